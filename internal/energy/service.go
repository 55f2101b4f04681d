package energy

import (
	"log/slog"
	"time"
)

// Broadcast event types delivered to every connected client.
const (
	EventEnergyConsumed      = "energy_consumed"
	EventBreakStarted        = "break_started"
	EventEnergyRestored      = "energy_restored"
	EventEnergyRegenerated   = "energy_regenerated"
	EventRegenerationPaused  = "regeneration_paused"
	EventRegenerationResumed = "regeneration_resumed"
)

// Gateway delivers a typed event to all connected clients. Implementations
// must tolerate concurrent calls; the service only invokes it after the
// session lock has been released.
type Gateway interface {
	Broadcast(event string, data any)
}

// RegenerationState is the answer to a regeneration query.
type RegenerationState struct {
	SecondsRemaining     int
	IsRegenerating       bool
	LastRegenerationTime time.Time
}

// Service exposes the energy operations to transport handlers. All state
// transitions run under the session's lock; broadcasts happen afterwards so
// a slow client never blocks unrelated sessions.
type Service struct {
	store   *Store
	gateway Gateway
	logger  *slog.Logger
}

func NewService(store *Store, gateway Gateway, logger *slog.Logger) *Service {
	return &Service{store: store, gateway: gateway, logger: logger}
}

// State returns a snapshot after the daily-reset check.
func (svc *Service) State(sessionID string) State {
	return svc.store.Snapshot(sessionID)
}

// Consume spends amount points for a session. taskID is echoed in the
// broadcast so clients can attribute the spend.
func (svc *Service) Consume(sessionID string, amount int, taskID string) (State, error) {
	snap, err := svc.store.Update(sessionID, func(s *State, now time.Time) error {
		wasFull := s.CurrentEnergy >= s.MaxEnergy
		if err := Consume(s, amount); err != nil {
			return err
		}
		// A full session has no countdown in progress; start one fresh
		// rather than crediting the idle time since the last reset. If an
		// explicit pause predates the spend, the span frozen by a later
		// resume must start here too, or the shift would push the
		// reference point past now.
		if wasFull {
			s.LastRegenerationTime = now
			if s.RegenerationPausedAt != nil {
				s.RegenerationPausedAt = &now
			}
		}
		return nil
	})
	if err != nil {
		return snap, err
	}

	svc.gateway.Broadcast(EventEnergyConsumed, map[string]any{
		"session_id":      snap.SessionID,
		"current_energy":  snap.CurrentEnergy,
		"max_energy":      snap.MaxEnergy,
		"energy_consumed": amount,
		"task_id":         taskID,
	})
	return snap, nil
}

// StartBreak begins a timed break for a session.
func (svc *Service) StartBreak(sessionID string, durationMinutes int) (State, BreakPlan, error) {
	var plan BreakPlan
	snap, err := svc.store.Update(sessionID, func(s *State, now time.Time) error {
		var err error
		plan, err = StartBreak(s, durationMinutes, now)
		return err
	})
	if err != nil {
		return snap, plan, err
	}

	svc.gateway.Broadcast(EventBreakStarted, map[string]any{
		"session_id":        snap.SessionID,
		"current_energy":    snap.CurrentEnergy,
		"max_energy":        snap.MaxEnergy,
		"duration_minutes":  plan.DurationMinutes,
		"energy_to_restore": plan.EnergyToRestore,
		"break_end_time":    plan.EndTime,
	})
	return snap, plan, nil
}

// CompleteBreak ends a break, possibly early, and applies the proportional
// restoration.
func (svc *Service) CompleteBreak(sessionID string) (State, int, error) {
	var restored int
	snap, err := svc.store.Update(sessionID, func(s *State, now time.Time) error {
		var err error
		restored, err = CompleteBreak(s, now)
		return err
	})
	if err != nil {
		return snap, 0, err
	}

	svc.gateway.Broadcast(EventEnergyRestored, map[string]any{
		"session_id":      snap.SessionID,
		"current_energy":  snap.CurrentEnergy,
		"max_energy":      snap.MaxEnergy,
		"energy_restored": restored,
	})
	return snap, restored, nil
}

// Regeneration reports the countdown for a session. While regeneration is
// not actively counting the full interval is reported as a placeholder.
func (svc *Service) Regeneration(sessionID string) RegenerationState {
	snap := svc.store.Snapshot(sessionID)
	return regenStateOf(&snap, svc.store.Now())
}

// PauseRegeneration freezes the countdown. Idempotent.
func (svc *Service) PauseRegeneration(sessionID string) State {
	changed := false
	snap, _ := svc.store.Update(sessionID, func(s *State, now time.Time) error {
		if !s.IsRegenerating {
			return nil
		}
		s.IsRegenerating = false
		s.RegenerationPausedAt = &now
		changed = true
		return nil
	})

	if changed {
		svc.gateway.Broadcast(EventRegenerationPaused, regenPayload(&snap, svc.store.Now()))
	}
	return snap
}

// ResumeRegeneration unfreezes the countdown exactly where it left off by
// shifting the reference point forward by the paused span. Idempotent.
func (svc *Service) ResumeRegeneration(sessionID string) State {
	changed := false
	snap, _ := svc.store.Update(sessionID, func(s *State, now time.Time) error {
		if s.IsRegenerating {
			return nil
		}
		if s.RegenerationPausedAt != nil {
			s.LastRegenerationTime = s.LastRegenerationTime.Add(now.Sub(*s.RegenerationPausedAt))
		}
		s.IsRegenerating = true
		s.RegenerationPausedAt = nil
		changed = true
		return nil
	})

	if changed {
		svc.gateway.Broadcast(EventRegenerationResumed, regenPayload(&snap, svc.store.Now()))
	}
	return snap
}

func regenStateOf(s *State, now time.Time) RegenerationState {
	rs := RegenerationState{
		SecondsRemaining:     int(RegenerationInterval / time.Second),
		IsRegenerating:       s.Regenerating(),
		LastRegenerationTime: s.LastRegenerationTime,
	}
	if rs.IsRegenerating {
		remaining := RegenerationInterval - now.Sub(s.LastRegenerationTime)
		if remaining < 0 {
			remaining = 0
		}
		rs.SecondsRemaining = int(remaining / time.Second)
	}
	return rs
}

func regenPayload(s *State, now time.Time) map[string]any {
	rs := regenStateOf(s, now)
	return map[string]any{
		"session_id":                  s.SessionID,
		"current_energy":              s.CurrentEnergy,
		"max_energy":                  s.MaxEnergy,
		"is_regenerating":             rs.IsRegenerating,
		"regeneration_time_remaining": rs.SecondsRemaining,
		"last_regeneration_time":      rs.LastRegenerationTime,
	}
}
