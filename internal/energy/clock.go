package energy

import (
	"context"
	"log/slog"
	"time"
)

// Clock is the single background regenerator shared by all sessions. Once
// per tick it iterates a snapshot of session keys and applies however many
// whole regeneration intervals have elapsed for each, so missed ticks
// (process sleep, slow scans) are caught up rather than lost.
type Clock struct {
	store   *Store
	gateway Gateway
	logger  *slog.Logger
	tick    time.Duration
}

// NewClock creates the regenerator. One instance per process.
func NewClock(store *Store, gateway Gateway, logger *slog.Logger) *Clock {
	return &Clock{
		store:   store,
		gateway: gateway,
		logger:  logger,
		tick:    time.Second,
	}
}

// Run scans until ctx is cancelled.
func (c *Clock) Run(ctx context.Context) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	c.logger.Info("regeneration clock started", "interval", RegenerationInterval.String())
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("regeneration clock stopped")
			return
		case <-ticker.C:
			c.scan()
		}
	}
}

// scan advances every eligible session. A failure on one session is logged
// and retried next tick; it never stops the rest of the scan.
func (c *Clock) scan() {
	for _, id := range c.store.SessionIDs() {
		restored := 0
		snap, err := c.store.Update(id, func(s *State, now time.Time) error {
			if !s.Regenerating() {
				return nil
			}
			elapsed := now.Sub(s.LastRegenerationTime)
			points := int(elapsed/RegenerationInterval) * RegenerationAmount
			if points <= 0 {
				return nil
			}
			restored = Restore(s, points)
			// Advance by whole intervals instead of resetting to now, so
			// fractional progress toward the next point is kept.
			s.LastRegenerationTime = s.LastRegenerationTime.Add(time.Duration(restored/RegenerationAmount) * RegenerationInterval)
			return nil
		})
		if err != nil {
			c.logger.Warn("regeneration skipped", "session_id", id, "error", err)
			continue
		}
		if restored > 0 {
			c.logger.Debug("energy regenerated", "session_id", id, "restored", restored, "current", snap.CurrentEnergy)
			c.gateway.Broadcast(EventEnergyRegenerated, map[string]any{
				"session_id":         snap.SessionID,
				"current_energy":     snap.CurrentEnergy,
				"max_energy":         snap.MaxEnergy,
				"energy_regenerated": restored,
			})
		}
	}
}
