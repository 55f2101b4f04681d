package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/questlog/questlog/internal/energy"
	"github.com/questlog/questlog/internal/markdown"
	"github.com/questlog/questlog/internal/models"
)

// EnergyHandler handles the /api/energy surface.
type EnergyHandler struct {
	svc *energy.Service
}

func NewEnergyHandler(svc *energy.Service) *EnergyHandler {
	return &EnergyHandler{svc: svc}
}

// GetState handles GET /api/energy
func (h *EnergyHandler) GetState(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.State(sessionID(r))
	writeJSON(w, http.StatusOK, stateResponse(snap))
}

// Consume handles POST /api/energy/consume. The cost is either the explicit
// amount or derived from the task's effort/friction annotations when
// metadata is present.
func (h *EnergyHandler) Consume(w http.ResponseWriter, r *http.Request) {
	var req models.ConsumeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	amount := req.Amount
	if req.TaskMetadata != nil {
		friction := req.TaskMetadata.Friction
		if friction == 0 {
			friction = 2
		}
		amount = energy.CostFor(markdown.ParseEffort(req.TaskMetadata.Effort), friction)
	}
	if amount < 1 {
		writeError(w, http.StatusBadRequest, "amount must be at least 1")
		return
	}

	snap, err := h.svc.Consume(sessionID(r), amount, req.TaskID)
	if err != nil {
		writeEnergyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ConsumeResponse{
		Success:        true,
		CurrentEnergy:  snap.CurrentEnergy,
		EnergyConsumed: amount,
		TaskID:         req.TaskID,
	})
}

// StartBreak handles POST /api/energy/break
func (h *EnergyHandler) StartBreak(w http.ResponseWriter, r *http.Request) {
	duration := 15
	if v := r.URL.Query().Get("duration_minutes"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "duration_minutes must be an integer")
			return
		}
		duration = d
	}

	_, plan, err := h.svc.StartBreak(sessionID(r), duration)
	if err != nil {
		writeEnergyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.BreakResponse{
		BreakEndTime:    plan.EndTime,
		DurationMinutes: plan.DurationMinutes,
		EnergyToRestore: plan.EnergyToRestore,
	})
}

// CompleteBreak handles POST /api/energy/restore
func (h *EnergyHandler) CompleteBreak(w http.ResponseWriter, r *http.Request) {
	snap, restored, err := h.svc.CompleteBreak(sessionID(r))
	if err != nil {
		writeEnergyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.RestoreResponse{
		Success:        true,
		CurrentEnergy:  snap.CurrentEnergy,
		EnergyRestored: restored,
	})
}

// Regeneration handles GET /api/energy/regeneration
func (h *EnergyHandler) Regeneration(w http.ResponseWriter, r *http.Request) {
	rs := h.svc.Regeneration(sessionID(r))
	writeJSON(w, http.StatusOK, models.RegenerationResponse{
		RegenerationTimeRemaining: rs.SecondsRemaining,
		IsRegenerating:            rs.IsRegenerating,
		LastRegenerationTime:      rs.LastRegenerationTime,
	})
}

// PauseRegeneration handles POST /api/energy/regeneration/pause
func (h *EnergyHandler) PauseRegeneration(w http.ResponseWriter, r *http.Request) {
	h.svc.PauseRegeneration(sessionID(r))
	writeJSON(w, http.StatusOK, models.AckResponse{Status: "ok"})
}

// ResumeRegeneration handles POST /api/energy/regeneration/resume
func (h *EnergyHandler) ResumeRegeneration(w http.ResponseWriter, r *http.Request) {
	h.svc.ResumeRegeneration(sessionID(r))
	writeJSON(w, http.StatusOK, models.AckResponse{Status: "ok"})
}

func stateResponse(s energy.State) models.EnergyStateResponse {
	return models.EnergyStateResponse{
		SessionID:     s.SessionID,
		CurrentEnergy: s.CurrentEnergy,
		MaxEnergy:     s.MaxEnergy,
		IsOnBreak:     s.IsOnBreak,
		BreakEndTime:  s.BreakEndTime,
	}
}

// writeEnergyError maps the validation taxonomy to 400 responses with the
// detail strings clients match on.
func writeEnergyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, energy.ErrInsufficientEnergy):
		writeError(w, http.StatusBadRequest, "Insufficient energy: "+err.Error())
	case errors.Is(err, energy.ErrOnBreak):
		writeError(w, http.StatusBadRequest, "Cannot consume energy while on break")
	case errors.Is(err, energy.ErrAlreadyOnBreak):
		writeError(w, http.StatusBadRequest, "Already on break")
	case errors.Is(err, energy.ErrEnergyFull):
		writeError(w, http.StatusBadRequest, "Energy is already full")
	case errors.Is(err, energy.ErrNotOnBreak):
		writeError(w, http.StatusBadRequest, "Not currently on break")
	case errors.Is(err, energy.ErrInvalidDuration):
		writeError(w, http.StatusBadRequest, "Break duration must be between 5 and 60 minutes")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
