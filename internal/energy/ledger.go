package energy

import "fmt"

// Ledger operations are pure state transitions. The caller holds the
// session's lock; nothing here touches timers or broadcasts.

// CostFor converts a task's effort and friction annotations into an energy
// cost: one point per half hour of effort (minimum one), adjusted by how far
// friction sits from the baseline of 2, clamped to [1, MaxEnergy].
func CostFor(effortMinutes, friction int) int {
	base := effortMinutes / 30
	if base < 1 {
		base = 1
	}
	cost := base + (friction - 2)
	if cost < 1 {
		cost = 1
	}
	if cost > MaxEnergy {
		cost = MaxEnergy
	}
	return cost
}

// Consume spends amount points. It does not touch the regeneration pause
// flag; pausing is an explicit separate call.
func Consume(s *State, amount int) error {
	if amount > s.CurrentEnergy {
		return fmt.Errorf("%w: required %d, available %d", ErrInsufficientEnergy, amount, s.CurrentEnergy)
	}
	if s.IsOnBreak {
		return ErrOnBreak
	}
	s.CurrentEnergy -= amount
	return nil
}

// Restore adds amount points, clamped at the cap, and returns how many were
// actually applied.
func Restore(s *State, amount int) int {
	applied := amount
	if room := s.MaxEnergy - s.CurrentEnergy; applied > room {
		applied = room
	}
	if applied < 0 {
		applied = 0
	}
	s.CurrentEnergy += applied
	return applied
}
