package energy

import "testing"

func TestCostFor(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		friction int
		want     int
	}{
		{"half hour normal friction", 30, 2, 1},
		{"one hour high friction", 60, 3, 3},
		{"tiny task low friction clamps to one", 15, 1, 1},
		{"five minutes friction one", 5, 1, 1},
		{"one hour normal friction", 60, 2, 2},
		{"half hour friction five", 30, 5, 4},
		{"two day task capped at max", 960, 2, 12},
		{"zero effort defaults to base one", 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CostFor(tt.minutes, tt.friction); got != tt.want {
				t.Errorf("CostFor(%d, %d) = %d, want %d", tt.minutes, tt.friction, got, tt.want)
			}
		})
	}
}

func TestConsume(t *testing.T) {
	s := &State{SessionID: "s", CurrentEnergy: 12, MaxEnergy: 12}

	if err := Consume(s, 3); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if s.CurrentEnergy != 9 {
		t.Errorf("current = %d, want 9", s.CurrentEnergy)
	}
}

func TestConsumeInsufficient(t *testing.T) {
	s := &State{SessionID: "s", CurrentEnergy: 2, MaxEnergy: 12}

	err := Consume(s, 5)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if s.CurrentEnergy != 2 {
		t.Errorf("state mutated on failure: current = %d, want 2", s.CurrentEnergy)
	}
}

func TestConsumeOnBreak(t *testing.T) {
	s := &State{SessionID: "s", CurrentEnergy: 8, MaxEnergy: 12, IsOnBreak: true}

	if err := Consume(s, 2); err != ErrOnBreak {
		t.Fatalf("expected ErrOnBreak, got %v", err)
	}
	if s.CurrentEnergy != 8 {
		t.Errorf("state mutated on failure: current = %d, want 8", s.CurrentEnergy)
	}
}

func TestConsumeDoesNotPauseRegeneration(t *testing.T) {
	s := &State{SessionID: "s", CurrentEnergy: 12, MaxEnergy: 12, IsRegenerating: true}

	if err := Consume(s, 4); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if !s.IsRegenerating {
		t.Error("consume must not pause regeneration")
	}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		amount      int
		wantApplied int
		wantCurrent int
	}{
		{"plain restore", 5, 3, 3, 8},
		{"clamped at cap", 10, 5, 2, 12},
		{"already full", 12, 3, 0, 12},
		{"negative amount is a no-op", 5, -2, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{SessionID: "s", CurrentEnergy: tt.current, MaxEnergy: 12}
			if got := Restore(s, tt.amount); got != tt.wantApplied {
				t.Errorf("applied = %d, want %d", got, tt.wantApplied)
			}
			if s.CurrentEnergy != tt.wantCurrent {
				t.Errorf("current = %d, want %d", s.CurrentEnergy, tt.wantCurrent)
			}
		})
	}
}

func TestConsumeThenRestoreRoundTrip(t *testing.T) {
	s := &State{SessionID: "s", CurrentEnergy: 9, MaxEnergy: 12}

	if err := Consume(s, 4); err != nil {
		t.Fatalf("consume: %v", err)
	}
	Restore(s, 4)
	if s.CurrentEnergy != 9 {
		t.Errorf("current = %d, want 9", s.CurrentEnergy)
	}
}
