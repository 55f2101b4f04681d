package energy

import (
	"sync"
	"time"
)

// Store maps session IDs to energy state. Sessions are created lazily at
// full energy on first access; the map lock is only held to find or insert
// an entry, never while a session's state is being read or mutated.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	loc      *time.Location
	now      func() time.Time
}

type entry struct {
	mu    sync.Mutex
	state *State
}

// NewStore creates an empty store. All daily-reset date comparisons use loc,
// never per-request local time.
func NewStore(loc *time.Location) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		loc:      loc,
		now:      time.Now,
	}
}

// Now returns the store's current time. Tests swap the clock out.
func (st *Store) Now() time.Time {
	return st.now()
}

// Location returns the configured reset timezone.
func (st *Store) Location() *time.Location {
	return st.loc
}

func (st *Store) get(sessionID string) *entry {
	st.mu.RLock()
	e, ok := st.sessions[sessionID]
	st.mu.RUnlock()
	if ok {
		return e
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if e, ok := st.sessions[sessionID]; ok {
		return e
	}
	e = &entry{state: newState(sessionID, st.now(), st.loc)}
	st.sessions[sessionID] = e
	return e
}

// Snapshot returns a copy of the session's state after the daily-reset
// check, creating the session at full energy if it does not exist.
func (st *Store) Snapshot(sessionID string) State {
	e := st.get(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	st.resetIfStale(e.state)
	return e.state.clone()
}

// Update runs fn with exclusive access to the session's state and returns a
// snapshot taken before the lock is released. The daily-reset check always
// runs first. If fn returns an error the snapshot reflects the state with no
// mutation from fn applied.
func (st *Store) Update(sessionID string, fn func(s *State, now time.Time) error) (State, error) {
	e := st.get(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	st.resetIfStale(e.state)
	err := fn(e.state, st.now())
	return e.state.clone(), err
}

// SessionIDs returns a snapshot of known session keys so that the
// regeneration clock never holds the map lock across a scan.
func (st *Store) SessionIDs() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	ids := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id)
	}
	return ids
}

// resetIfStale applies the daily reset when the calendar date has advanced
// past the last reset. Caller holds the session lock.
func (st *Store) resetIfStale(s *State) {
	now := st.now()
	today := dateOf(now, st.loc)
	if !today.After(s.LastResetDate) {
		return
	}
	s.CurrentEnergy = s.MaxEnergy
	s.IsOnBreak = false
	s.BreakStartedAt = nil
	s.BreakEndTime = nil
	s.IsRegenerating = true
	s.RegenerationPausedAt = nil
	s.LastRegenerationTime = now
	s.LastResetDate = today
}
