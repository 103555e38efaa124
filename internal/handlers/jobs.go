package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/middleware"
	"github.com/Gelbic/zakazky/internal/services"
	"github.com/Gelbic/zakazky/internal/validation"
)

type JobHandler struct {
	Jobs      *services.JobService
	Customers *services.CustomerService
}

func NewJobHandler(jobs *services.JobService, customers *services.CustomerService) *JobHandler {
	return &JobHandler{Jobs: jobs, Customers: customers}
}

// List: GET /jobs – HTML or JSON
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Jobs.List()
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": rows, "total": len(rows)})
		return
	}
	renderTemplate(w, r, "job_list", map[string]any{"Jobs": rows})
}

// jobInputFromForm maps a submitted create/edit form onto a JobInput.
// Malformed optional dates surface as validation violations.
func jobInputFromForm(r *http.Request) (services.JobInput, validation.Violations) {
	v := validation.Violations{}
	in := services.JobInput{
		JobNumber:   strings.TrimSpace(r.FormValue("job_number")),
		JobName:     strings.TrimSpace(r.FormValue("job_name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		CustomerID:  parseOptionalUint(r.FormValue("customer_id")),
		Status:      strings.TrimSpace(r.FormValue("status")),
		DueDate:     validation.Date("due_date", r.FormValue("due_date"), v),
		Price:       parseOptionalFloat(r.FormValue("price")),
		HourlyRate:  parseOptionalFloat(r.FormValue("hourly_rate")),
	}
	return in, v
}

type jobJSONReq struct {
	JobNumber   string   `json:"job_number"`
	JobName     string   `json:"job_name"`
	Description string   `json:"description"`
	CustomerID  *uint    `json:"customer_id"`
	Status      string   `json:"status"`
	Price       *float64 `json:"price"`
	HourlyRate  *float64 `json:"hourly_rate"`
}

// Create: GET renders the form, POST creates (JSON or form body).
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		customers, err := h.Customers.List()
		if err != nil {
			respondError(w, r, err)
			return
		}
		renderTemplate(w, r, "job_form", map[string]any{"Customers": customers, "SelectedCustomerID": uint(0)})
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "GET,POST")
		return
	}
	var in services.JobInput
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req jobJSONReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
		in = services.JobInput{JobNumber: req.JobNumber, JobName: req.JobName, Description: req.Description,
			CustomerID: req.CustomerID, Status: req.Status, Price: req.Price, HourlyRate: req.HourlyRate}
	} else {
		if err := r.ParseForm(); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
			return
		}
		var v validation.Violations
		in, v = jobInputFromForm(r)
		if !v.Empty() {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
			return
		}
	}
	job, err := h.Jobs.Create(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]any{"id": job.ID, "job_number": job.JobNumber, "status": job.Status})
		return
	}
	middleware.Flash(w, r, "saved")
	http.Redirect(w, r, "/jobs", statusSeeOther)
}

// Detail: GET /jobs/detail?id=N
func (h *JobHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	detail, err := h.Jobs.Detail(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"job":         detail.Job,
			"total_hours": detail.TotalHours,
			"total_price": detail.TotalPrice,
		})
		return
	}
	renderTemplate(w, r, "job_detail", map[string]any{
		"Job":        detail.Job,
		"TotalHours": detail.TotalHours,
		"TotalPrice": detail.TotalPrice,
	})
}

// Edit: GET renders the pre-filled form, POST applies the update.
func (h *JobHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if r.Method == http.MethodGet {
		detail, err := h.Jobs.Detail(id)
		if err != nil {
			respondError(w, r, err)
			return
		}
		customers, err := h.Customers.List()
		if err != nil {
			respondError(w, r, err)
			return
		}
		selected := uint(0)
		if detail.Job.CustomerID != nil {
			selected = *detail.Job.CustomerID
		}
		renderTemplate(w, r, "job_form", map[string]any{
			"Job":                detail.Job,
			"Customers":          customers,
			"SelectedCustomerID": selected,
		})
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "GET,POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	in, v := jobInputFromForm(r)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	job, err := h.Jobs.Update(id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"id": job.ID})
		return
	}
	middleware.Flash(w, r, "saved")
	http.Redirect(w, r, "/jobs/detail?id="+itoa(job.ID), statusSeeOther)
}

// Delete: POST /jobs/delete?id=N – cascades to all children.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if err := h.Jobs.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}
	middleware.Flash(w, r, "deleted")
	http.Redirect(w, r, "/jobs", statusSeeOther)
}

// Done: POST /jobs/done?id=N – transitions the job to Dokončená.
func (h *JobHandler) Done(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if err := h.Jobs.SetDone(id); err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}
	middleware.Flash(w, r, "job_done")
	http.Redirect(w, r, "/jobs/detail?id="+itoa(id), statusSeeOther)
}
