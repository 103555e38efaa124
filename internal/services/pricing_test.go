package services

import (
	"testing"
	"time"

	"github.com/Gelbic/zakazky/internal/models"
)

func TestComputeTotalHourlyPlusExtras(t *testing.T) {
	svc := NewPricingService()
	job := &models.Job{
		HourlyRate: floatPtr(500),
		HoursEntries: []models.HoursEntry{
			{Hours: 2}, {Hours: 3}, {Hours: 1.5},
		},
		Extras: []models.ExtraService{
			{ServiceName: "Materiál", Cost: 100},
			{ServiceName: "Doprava", Cost: 50},
		},
	}
	want := 500*6.5 + 150.0
	if got := svc.ComputeTotal(job); got != want {
		t.Fatalf("ComputeTotal = %v want %v", got, want)
	}
	// Pure: a second call yields the same value and mutates nothing.
	if got := svc.ComputeTotal(job); got != want {
		t.Fatalf("second ComputeTotal = %v want %v", got, want)
	}
	if len(job.HoursEntries) != 3 || len(job.Extras) != 2 {
		t.Fatalf("associations mutated by computation")
	}
}

func TestComputeTotalFixedOnly(t *testing.T) {
	svc := NewPricingService()
	job := &models.Job{Price: floatPtr(12000)}
	if got := svc.ComputeTotal(job); got != 12000 {
		t.Fatalf("ComputeTotal = %v want 12000", got)
	}
}

func TestComputeTotalMixedSumsBothComponents(t *testing.T) {
	// Fixed price acts as a base fee; hourly work is billed on top.
	svc := NewPricingService()
	job := &models.Job{
		Price:        floatPtr(1000),
		HourlyRate:   floatPtr(200),
		HoursEntries: []models.HoursEntry{{Hours: 4, DateSpent: time.Now()}},
	}
	if got := svc.ComputeTotal(job); got != 1000+800 {
		t.Fatalf("ComputeTotal = %v want 1800", got)
	}
}

func TestComputeTotalEmptyJob(t *testing.T) {
	svc := NewPricingService()
	if got := svc.ComputeTotal(&models.Job{}); got != 0 {
		t.Fatalf("ComputeTotal on empty job = %v want 0", got)
	}
	if got := svc.ComputeTotal(nil); got != 0 {
		t.Fatalf("ComputeTotal(nil) = %v want 0", got)
	}
	if got := svc.TotalHours(&models.Job{}); got != 0 {
		t.Fatalf("TotalHours on empty job = %v want 0", got)
	}
}
