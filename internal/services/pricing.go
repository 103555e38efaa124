package services

import (
	"github.com/Gelbic/zakazky/internal/models"
)

// PricingService computes derived totals for a job. All methods are pure:
// they read the preloaded associations and never touch the database, so
// repeated calls on the same data always yield the same result.
type PricingService struct{}

func NewPricingService() *PricingService { return &PricingService{} }

// TotalHours sums logged hours over the job's entries (0 if none).
func (s *PricingService) TotalHours(job *models.Job) float64 {
	if job == nil {
		return 0
	}
	var sum float64
	for _, e := range job.HoursEntries {
		sum += e.Hours
	}
	return sum
}

// ExtrasCost sums the itemized extra service costs (0 if none).
func (s *PricingService) ExtrasCost(job *models.Job) float64 {
	if job == nil {
		return 0
	}
	var sum float64
	for _, e := range job.Extras {
		sum += e.Cost
	}
	return sum
}

// ComputeTotal derives the payable amount for a job:
//
//	hourly_rate × total_hours  (when an hourly rate is set)
//	+ fixed price              (when a fixed price is set)
//	+ extra service costs
//
// When both pricing fields are set the fixed price acts as a base fee and
// hourly work is billed on top of it.
func (s *PricingService) ComputeTotal(job *models.Job) float64 {
	if job == nil {
		return 0
	}
	var total float64
	if job.HourlyRate != nil {
		total += s.TotalHours(job) * (*job.HourlyRate)
	}
	if job.Price != nil {
		total += *job.Price
	}
	return total + s.ExtrasCost(job)
}
