package energy

import "time"

// BreakPlan describes a started break. EnergyToRestore is the projection
// shown to the user; restoration happens at completion, not at start.
type BreakPlan struct {
	EndTime         time.Time
	DurationMinutes int
	EnergyToRestore int
}

// StartBreak transitions Working -> OnBreak. Valid only while working and
// below the cap, with a duration in [MinBreakMinutes, MaxBreakMinutes].
// Regeneration never fires while the break is active.
func StartBreak(s *State, durationMinutes int, now time.Time) (BreakPlan, error) {
	if durationMinutes < MinBreakMinutes || durationMinutes > MaxBreakMinutes {
		return BreakPlan{}, ErrInvalidDuration
	}
	if s.IsOnBreak {
		return BreakPlan{}, ErrAlreadyOnBreak
	}
	if s.CurrentEnergy >= s.MaxEnergy {
		return BreakPlan{}, ErrEnergyFull
	}

	end := now.Add(time.Duration(durationMinutes) * time.Minute)
	s.IsOnBreak = true
	s.BreakStartedAt = &now
	s.BreakEndTime = &end

	projected := durationMinutes / BreakRestoreMinutes
	if room := s.MaxEnergy - s.CurrentEnergy; projected > room {
		projected = room
	}
	return BreakPlan{EndTime: end, DurationMinutes: durationMinutes, EnergyToRestore: projected}, nil
}

// CompleteBreak transitions OnBreak -> Working, restoring one point per full
// BreakRestoreMinutes actually spent on break (capped at the planned
// duration). May be called early. Regeneration restarts fresh from now so
// time spent on break never counts toward the next passive point.
func CompleteBreak(s *State, now time.Time) (int, error) {
	if !s.IsOnBreak || s.BreakEndTime == nil || s.BreakStartedAt == nil {
		return 0, ErrNotOnBreak
	}

	end := now
	if end.After(*s.BreakEndTime) {
		end = *s.BreakEndTime
	}
	elapsed := end.Sub(*s.BreakStartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	restored := Restore(s, int(elapsed/(BreakRestoreMinutes*time.Minute)))

	s.IsOnBreak = false
	s.BreakStartedAt = nil
	s.BreakEndTime = nil
	if s.CurrentEnergy < s.MaxEnergy {
		s.IsRegenerating = true
		s.RegenerationPausedAt = nil
		s.LastRegenerationTime = now
	}
	return restored, nil
}
