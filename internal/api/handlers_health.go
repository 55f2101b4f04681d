package api

import (
	"net/http"
	"os"

	"github.com/questlog/questlog/internal/models"
	"github.com/questlog/questlog/internal/store"
	"github.com/questlog/questlog/internal/ws"
)

type HealthHandler struct {
	db       *store.DB
	todoPath string
	hub      *ws.Hub
}

func NewHealthHandler(db *store.DB, todoPath string, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{db: db, todoPath: todoPath, hub: hub}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:  "ok",
		Clients: h.hub.ClientCount(),
	}

	if err := h.db.Ping(); err != nil {
		resp.DB = models.ServiceCheck{Status: "error", Message: err.Error()}
		resp.Status = "degraded"
	} else {
		resp.DB = models.ServiceCheck{Status: "ok"}
	}

	// A missing todo file is fine; it is created on first access.
	if _, err := os.Stat(h.todoPath); err != nil && !os.IsNotExist(err) {
		resp.TaskFile = models.ServiceCheck{Status: "error", Message: err.Error()}
		resp.Status = "degraded"
	} else {
		resp.TaskFile = models.ServiceCheck{Status: "ok"}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
