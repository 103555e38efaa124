package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/services"
	"github.com/Gelbic/zakazky/internal/validation"
)

type TaskHandler struct {
	Tasks     *services.TaskService
	Timesheet *services.TimesheetService
}

func NewTaskHandler(tasks *services.TaskService, timesheet *services.TimesheetService) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Timesheet: timesheet}
}

// Add: POST /tasks/add – attaches a checklist item to a job.
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	jobID, ok := parseFormUint(r, "job_id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_job_id", nil)
		return
	}
	v := validation.Violations{}
	in := services.TaskInput{
		JobID:    jobID,
		TaskName: strings.TrimSpace(r.FormValue("task_name")),
		Notes:    strings.TrimSpace(r.FormValue("notes")),
		DueDate:  validation.Date("due_date", r.FormValue("due_date"), v),
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	task, err := h.Tasks.Add(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "id": task.ID})
		return
	}
	http.Redirect(w, r, "/jobs/detail?id="+itoa(jobID), statusSeeOther)
}

// Toggle: POST /tasks/toggle?id=N – flips completion, reports the new state.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	task, err := h.Tasks.Toggle(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "new_status": task.IsCompleted})
		return
	}
	http.Redirect(w, r, "/jobs/detail?id="+itoa(task.JobID), statusSeeOther)
}

// AddHours: POST /hours/add – logs worker time on a job.
func (h *TaskHandler) AddHours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	jobID, ok := parseFormUint(r, "job_id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_job_id", nil)
		return
	}
	hoursVal, err := strconv.ParseFloat(r.FormValue("hours"), 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"hours": "invalid_number"})
		return
	}
	v := validation.Violations{}
	in := services.HoursInput{
		JobID:       jobID,
		WorkerID:    parseOptionalUint(r.FormValue("worker_id")),
		Hours:       hoursVal,
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if d := validation.Date("date_spent", r.FormValue("date_spent"), v); d != nil {
		in.DateSpent = *d
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	entry, err := h.Timesheet.AddHours(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "id": entry.ID})
		return
	}
	http.Redirect(w, r, "/jobs/detail?id="+itoa(jobID), statusSeeOther)
}

// AddExtra: POST /services/add – itemized extra cost on a job.
func (h *TaskHandler) AddExtra(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	jobID, ok := parseFormUint(r, "job_id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_job_id", nil)
		return
	}
	cost, err := strconv.ParseFloat(r.FormValue("cost"), 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"cost": "invalid_number"})
		return
	}
	in := services.ExtraInput{
		JobID:       jobID,
		ServiceName: strings.TrimSpace(r.FormValue("service_name")),
		Cost:        cost,
		Notes:       strings.TrimSpace(r.FormValue("notes")),
	}
	extra, err := h.Timesheet.AddExtra(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "id": extra.ID})
		return
	}
	http.Redirect(w, r, "/jobs/detail?id="+itoa(jobID), statusSeeOther)
}

// parseFormUint reads a required numeric form value.
func parseFormUint(r *http.Request, field string) (uint, bool) {
	n, err := strconv.ParseUint(r.FormValue(field), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
