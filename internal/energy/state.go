package energy

import "time"

const (
	// MaxEnergy is the per-session energy cap. Shared by every session.
	MaxEnergy = 12

	// RegenerationInterval is how long one passive point takes to come back.
	RegenerationInterval = 15 * time.Minute

	// RegenerationAmount is the number of points restored per interval.
	RegenerationAmount = 1

	// MinBreakMinutes and MaxBreakMinutes bound a requested break.
	MinBreakMinutes = 5
	MaxBreakMinutes = 60

	// BreakRestoreMinutes is the break length required per restored point.
	BreakRestoreMinutes = 15
)

// State is one session's energy bookkeeping. It is owned by the Store and
// only ever mutated while that session's lock is held.
type State struct {
	SessionID            string
	CurrentEnergy        int
	MaxEnergy            int
	IsOnBreak            bool
	BreakStartedAt       *time.Time
	BreakEndTime         *time.Time
	LastResetDate        time.Time
	IsRegenerating       bool
	RegenerationPausedAt *time.Time
	LastRegenerationTime time.Time
}

func newState(sessionID string, now time.Time, loc *time.Location) *State {
	return &State{
		SessionID:            sessionID,
		CurrentEnergy:        MaxEnergy,
		MaxEnergy:            MaxEnergy,
		IsRegenerating:       true,
		LastResetDate:        dateOf(now, loc),
		LastRegenerationTime: now,
	}
}

// Regenerating reports whether passive regeneration is currently counting
// down: not explicitly paused, not on break, and below the cap.
func (s *State) Regenerating() bool {
	return s.IsRegenerating && !s.IsOnBreak && s.CurrentEnergy < s.MaxEnergy
}

// clone returns a snapshot safe to use after the session lock is released.
func (s *State) clone() State {
	c := *s
	if s.BreakStartedAt != nil {
		t := *s.BreakStartedAt
		c.BreakStartedAt = &t
	}
	if s.BreakEndTime != nil {
		t := *s.BreakEndTime
		c.BreakEndTime = &t
	}
	if s.RegenerationPausedAt != nil {
		t := *s.RegenerationPausedAt
		c.RegenerationPausedAt = &t
	}
	return c
}

// dateOf truncates t to midnight in the configured reset timezone.
func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
