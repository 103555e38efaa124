package handlers

import (
	"net/http"
	"strings"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/middleware"
	"github.com/Gelbic/zakazky/internal/services"
)

type WorkerHandler struct{ Workers *services.WorkerService }

func NewWorkerHandler(svc *services.WorkerService) *WorkerHandler {
	return &WorkerHandler{Workers: svc}
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.Workers.List()
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": workers, "total": len(workers)})
		return
	}
	renderTemplate(w, r, "worker_list", map[string]any{"Workers": workers})
}

// Create: POST /workers/add – worker names are unique.
func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	in := services.WorkerInput{
		Name:  strings.TrimSpace(r.FormValue("name")),
		Email: strings.TrimSpace(r.FormValue("email")),
		Phone: strings.TrimSpace(r.FormValue("phone")),
	}
	worker, err := h.Workers.Create(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]any{"id": worker.ID})
		return
	}
	middleware.Flash(w, r, "saved")
	http.Redirect(w, r, "/workers", statusSeeOther)
}

// Delete: POST /workers/delete?id=N – hours entries survive with a NULL worker.
func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if err := h.Workers.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}
	middleware.Flash(w, r, "deleted")
	http.Redirect(w, r, "/workers", statusSeeOther)
}
