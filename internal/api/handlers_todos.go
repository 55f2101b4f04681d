package api

import (
	"net/http"

	"github.com/questlog/questlog/internal/models"
	"github.com/questlog/questlog/internal/tasks"
)

// TodoHandler handles the todo-file surface.
type TodoHandler struct {
	svc     *tasks.Service
	gateway tasks.Broadcaster
}

func NewTodoHandler(svc *tasks.Service, gateway tasks.Broadcaster) *TodoHandler {
	return &TodoHandler{svc: svc, gateway: gateway}
}

// Get handles GET /api/todos
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	tf, err := h.svc.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tf)
}

// Update handles POST /api/todos. The whole file is replaced and the new
// sections are broadcast to every client.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var tf models.TaskFile
	if err := decodeJSON(r, &tf); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	for section := range tf {
		if !section.IsValid() {
			writeError(w, http.StatusBadRequest, "unknown section: "+string(section))
			return
		}
	}

	if err := h.svc.Save(tf); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.gateway.Broadcast(tasks.EventUpdate, tf)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
