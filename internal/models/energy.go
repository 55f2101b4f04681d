package models

import "time"

// TaskMetadata carries the effort/friction annotations used to derive an
// energy cost when the client does not send an explicit amount.
type TaskMetadata struct {
	Effort   string `json:"effort,omitempty"`
	Friction int    `json:"friction,omitempty"`
	Category string `json:"category,omitempty"`
}

// EnergyStateResponse is the payload for GET /api/energy.
type EnergyStateResponse struct {
	SessionID     string     `json:"session_id"`
	CurrentEnergy int        `json:"current_energy"`
	MaxEnergy     int        `json:"max_energy"`
	IsOnBreak     bool       `json:"is_on_break"`
	BreakEndTime  *time.Time `json:"break_end_time"`
}

// ConsumeRequest is the payload for POST /api/energy/consume.
type ConsumeRequest struct {
	Amount       int           `json:"amount"`
	TaskID       string        `json:"task_id,omitempty"`
	TaskMetadata *TaskMetadata `json:"task_metadata,omitempty"`
}

// ConsumeResponse reports the result of an energy spend.
type ConsumeResponse struct {
	Success        bool   `json:"success"`
	CurrentEnergy  int    `json:"current_energy"`
	EnergyConsumed int    `json:"energy_consumed"`
	TaskID         string `json:"task_id,omitempty"`
}

// BreakResponse reports a started break. EnergyToRestore is the projection
// shown in the UI; restoration is applied when the break completes.
type BreakResponse struct {
	BreakEndTime    time.Time `json:"break_end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	EnergyToRestore int       `json:"energy_to_restore"`
}

// RestoreResponse reports a completed break.
type RestoreResponse struct {
	Success        bool `json:"success"`
	CurrentEnergy  int  `json:"current_energy"`
	EnergyRestored int  `json:"energy_restored"`
}

// RegenerationResponse is the payload for GET /api/energy/regeneration.
type RegenerationResponse struct {
	RegenerationTimeRemaining int       `json:"regeneration_time_remaining"`
	IsRegenerating            bool      `json:"is_regenerating"`
	LastRegenerationTime      time.Time `json:"last_regeneration_time"`
}

// AckResponse acknowledges an idempotent operation.
type AckResponse struct {
	Status string `json:"status"`
}
