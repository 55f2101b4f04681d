package api

import (
	"net/http"
	"time"

	"github.com/questlog/questlog/internal/models"
	"github.com/questlog/questlog/internal/stats"
	"github.com/questlog/questlog/internal/store"
	"github.com/questlog/questlog/internal/tasks"
)

// StatsHandler handles the gamification surface.
type StatsHandler struct {
	svc   *tasks.Service
	bonus *store.BonusStore
	loc   *time.Location
}

func NewStatsHandler(svc *tasks.Service, bonus *store.BonusStore, loc *time.Location) *StatsHandler {
	return &StatsHandler{svc: svc, bonus: bonus, loc: loc}
}

// Get handles GET /api/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	tf, err := h.svc.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := time.Now().In(h.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)

	bonusTotal, err := h.bonus.TotalXP()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	bonusToday, err := h.bonus.TotalXPSince(midnight)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats.Compute(tf, now.Format("2006-01-02"), bonusTotal, bonusToday))
}

// Bonus handles POST /api/stats/bonus
func (h *StatsHandler) Bonus(w http.ResponseWriter, r *http.Request) {
	var req models.BonusXPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.XP <= 0 {
		writeError(w, http.StatusBadRequest, "xp must be positive")
		return
	}

	if err := h.bonus.Add(req.XP, req.Reason); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.BonusXPResponse{
		Status:  "ok",
		XPAdded: req.XP,
		Reason:  req.Reason,
	})
}

// QuickWin handles GET /api/quick-win
func (h *StatsHandler) QuickWin(w http.ResponseWriter, r *http.Request) {
	tf, err := h.svc.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	win := stats.QuickWin(tf)
	if win == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, win)
}
