package store

import (
	"fmt"
	"time"
)

// BonusStore persists manually granted XP so totals survive restarts.
type BonusStore struct {
	db *DB
}

// NewBonusStore creates a new bonus-XP ledger store.
func NewBonusStore(db *DB) *BonusStore {
	return &BonusStore{db: db}
}

// Add records a bonus grant.
func (s *BonusStore) Add(xp int, reason string) error {
	_, err := s.db.Exec(`
		INSERT INTO bonus_xp (xp, reason, created_at)
		VALUES (?, ?, ?)
	`, xp, reason, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("insert bonus xp: %w", err)
	}
	return nil
}

// TotalXP sums every grant ever recorded.
func (s *BonusStore) TotalXP() (int, error) {
	var total int
	err := s.db.QueryRow(`SELECT COALESCE(SUM(xp), 0) FROM bonus_xp`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum bonus xp: %w", err)
	}
	return total, nil
}

// TotalXPSince sums grants recorded at or after t.
func (s *BonusStore) TotalXPSince(t time.Time) (int, error) {
	var total int
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(xp), 0) FROM bonus_xp WHERE created_at >= ?
	`, t.Unix()).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum bonus xp since: %w", err)
	}
	return total, nil
}
