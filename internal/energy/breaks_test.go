package energy

import (
	"testing"
	"time"
)

func workingState(current int) *State {
	return &State{
		SessionID:      "s",
		CurrentEnergy:  current,
		MaxEnergy:      MaxEnergy,
		IsRegenerating: true,
	}
}

func TestStartBreak(t *testing.T) {
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := workingState(8)

	plan, err := StartBreak(s, 30, now)
	if err != nil {
		t.Fatalf("start break: %v", err)
	}
	if !s.IsOnBreak {
		t.Error("state must be on break")
	}
	if plan.DurationMinutes != 30 {
		t.Errorf("duration = %d, want 30", plan.DurationMinutes)
	}
	if want := now.Add(30 * time.Minute); !plan.EndTime.Equal(want) {
		t.Errorf("end = %v, want %v", plan.EndTime, want)
	}
	if plan.EnergyToRestore != 2 {
		t.Errorf("projected restore = %d, want 2", plan.EnergyToRestore)
	}
	if s.Regenerating() {
		t.Error("regeneration must not run during a break")
	}
}

func TestStartBreakProjectionClampedToDeficit(t *testing.T) {
	s := workingState(11)
	plan, err := StartBreak(s, 60, time.Now())
	if err != nil {
		t.Fatalf("start break: %v", err)
	}
	if plan.EnergyToRestore != 1 {
		t.Errorf("projected restore = %d, want 1 (only 1 point of room)", plan.EnergyToRestore)
	}
}

func TestStartBreakValidation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		state    *State
		duration int
		wantErr  error
	}{
		{"too short", workingState(8), 2, ErrInvalidDuration},
		{"too long", workingState(8), 120, ErrInvalidDuration},
		{"full energy", workingState(MaxEnergy), 15, ErrEnergyFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := StartBreak(tt.state, tt.duration, now); err != tt.wantErr {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.state.IsOnBreak {
				t.Error("failed start must not mutate state")
			}
		})
	}
}

func TestStartBreakAlreadyOnBreak(t *testing.T) {
	s := workingState(8)
	if _, err := StartBreak(s, 15, time.Now()); err != nil {
		t.Fatalf("first break: %v", err)
	}
	if _, err := StartBreak(s, 15, time.Now()); err != ErrAlreadyOnBreak {
		t.Errorf("err = %v, want ErrAlreadyOnBreak", err)
	}
}

func TestCompleteBreakFullDuration(t *testing.T) {
	start := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := workingState(9)

	if _, err := StartBreak(s, 15, start); err != nil {
		t.Fatalf("start break: %v", err)
	}

	restored, err := CompleteBreak(s, start.Add(15*time.Minute))
	if err != nil {
		t.Fatalf("complete break: %v", err)
	}
	// min(max-current, duration/15) = min(3, 1) = 1
	if restored != 1 {
		t.Errorf("restored = %d, want 1", restored)
	}
	if s.CurrentEnergy != 10 {
		t.Errorf("current = %d, want 10", s.CurrentEnergy)
	}
	if s.IsOnBreak {
		t.Error("break must be cleared")
	}
	if !s.Regenerating() {
		t.Error("regeneration must resume below the cap")
	}
	if want := start.Add(15 * time.Minute); !s.LastRegenerationTime.Equal(want) {
		t.Errorf("last regeneration = %v, want fresh start %v", s.LastRegenerationTime, want)
	}
}

func TestCompleteBreakEarlyRestoresProportionally(t *testing.T) {
	start := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := workingState(6)

	if _, err := StartBreak(s, 60, start); err != nil {
		t.Fatalf("start break: %v", err)
	}

	// Back after 35 of the planned 60 minutes: two full 15-minute chunks.
	restored, err := CompleteBreak(s, start.Add(35*time.Minute))
	if err != nil {
		t.Fatalf("complete break: %v", err)
	}
	if restored != 2 {
		t.Errorf("restored = %d, want 2", restored)
	}
	if s.CurrentEnergy != 8 {
		t.Errorf("current = %d, want 8", s.CurrentEnergy)
	}
}

func TestCompleteBreakAfterExpiryCappedAtPlanned(t *testing.T) {
	start := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := workingState(2)

	if _, err := StartBreak(s, 30, start); err != nil {
		t.Fatalf("start break: %v", err)
	}

	// Completed two hours later; only the planned 30 minutes count.
	restored, err := CompleteBreak(s, start.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("complete break: %v", err)
	}
	if restored != 2 {
		t.Errorf("restored = %d, want 2", restored)
	}
}

func TestCompleteBreakNotOnBreak(t *testing.T) {
	s := workingState(8)
	if _, err := CompleteBreak(s, time.Now()); err != ErrNotOnBreak {
		t.Errorf("err = %v, want ErrNotOnBreak", err)
	}
}

func TestConsumeBreakRestoreScenario(t *testing.T) {
	// energy=12, consume(3) -> 9, break(15), complete after 15 minutes -> 10.
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	s := workingState(MaxEnergy)

	if err := Consume(s, 3); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if s.CurrentEnergy != 9 {
		t.Fatalf("current = %d, want 9", s.CurrentEnergy)
	}

	if _, err := StartBreak(s, 15, now); err != nil {
		t.Fatalf("start break: %v", err)
	}
	if !s.IsOnBreak {
		t.Fatal("expected on break")
	}

	restored, err := CompleteBreak(s, now.Add(15*time.Minute))
	if err != nil {
		t.Fatalf("complete break: %v", err)
	}
	if restored != 1 || s.CurrentEnergy != 10 || s.IsOnBreak {
		t.Errorf("restored=%d current=%d onBreak=%v, want 1/10/false", restored, s.CurrentEnergy, s.IsOnBreak)
	}
}
