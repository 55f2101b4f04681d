package energy

import "errors"

// Validation failures surfaced to the caller as rejected operations. None of
// them leaves a State partially mutated; checks run before any field is
// written.
var (
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrOnBreak            = errors.New("cannot consume energy while on break")
	ErrAlreadyOnBreak     = errors.New("already on break")
	ErrEnergyFull         = errors.New("energy is already full")
	ErrNotOnBreak         = errors.New("not currently on break")
	ErrInvalidDuration    = errors.New("break duration must be between 5 and 60 minutes")
)
