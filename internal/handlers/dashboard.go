package handlers

import (
	"net/http"
	"time"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/services"
)

// DashboardHandler renders the landing page: counts, the five nearest-due
// jobs, and jobs due within ten days.
type DashboardHandler struct{ Jobs *services.JobService }

func NewDashboardHandler(jobs *services.JobService) *DashboardHandler {
	return &DashboardHandler{Jobs: jobs}
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	d, err := h.Jobs.DashboardData(time.Now())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"job_count":      d.JobCount,
			"customer_count": d.CustomerCount,
			"nearest_jobs":   d.NearestJobs,
			"upcoming_jobs":  d.UpcomingJobs,
		})
		return
	}
	renderTemplate(w, r, "index", map[string]any{
		"JobCount":      d.JobCount,
		"CustomerCount": d.CustomerCount,
		"Jobs":          d.NearestJobs,
		"UpcomingJobs":  d.UpcomingJobs,
	})
}
