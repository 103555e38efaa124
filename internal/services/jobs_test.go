package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Gelbic/zakazky/internal/models"
)

func TestJobCreateDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	if _, err := svc.Create(JobInput{JobNumber: "Z-2026-001", JobName: "Plot"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(JobInput{JobNumber: "Z-2026-001", JobName: "Jiná zakázka"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}
	var count int64
	db.Model(&models.Job{}).Where("job_number = ?", "Z-2026-001").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one job row got %d", count)
	}
}

func TestJobCreateDefaultsStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job, err := svc.Create(JobInput{JobNumber: "Z-1", JobName: "Plot"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Status != DefaultStatus {
		t.Fatalf("expected default status %q got %q", DefaultStatus, job.Status)
	}
	if job.PaymentStatus != models.PaymentUnpaid {
		t.Fatalf("expected unpaid payment status got %q", job.PaymentStatus)
	}
}

func TestJobCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	if _, err := svc.Create(JobInput{JobName: "bez čísla"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation got %v", err)
	}
	if _, err := svc.Create(JobInput{JobNumber: "Z-2", JobName: "Plot", Status: models.StatusInvoiced}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for closed status got %v", err)
	}
}

func TestJobUpdateCannotSetClosedStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := seedJob(t, db, "Z-3")
	_, err := svc.Update(job.ID, JobInput{JobNumber: "Z-3", JobName: "Plot", Status: models.StatusDone})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation got %v", err)
	}
}

func TestJobUpdateCannotReopenDoneJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := seedJob(t, db, "Z-4")
	if err := svc.SetDone(job.ID); err != nil {
		t.Fatalf("set done: %v", err)
	}
	_, err := svc.Update(job.ID, JobInput{JobNumber: "Z-4", JobName: "Plot", Status: "V realizaci"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation got %v", err)
	}
	// Keeping the current status while editing other fields stays allowed.
	if _, err := svc.Update(job.ID, JobInput{JobNumber: "Z-4", JobName: "Plot u domu", Status: models.StatusDone}); err != nil {
		t.Fatalf("edit without status change: %v", err)
	}
}

func TestJobSetDone(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := seedJob(t, db, "Z-5")
	if err := svc.SetDone(job.ID); err != nil {
		t.Fatalf("set done: %v", err)
	}
	var reloaded models.Job
	if err := db.First(&reloaded, job.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.StatusDone {
		t.Fatalf("expected %q got %q", models.StatusDone, reloaded.Status)
	}
	if err := svc.SetDone(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestJobDeleteCascadesToAllChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := seedJob(t, db, "Z-6")
	worker := seedWorker(t, db, "Karel")
	for i := 0; i < 3; i++ {
		if err := db.Create(&models.Task{JobID: job.ID, TaskName: "úkol"}).Error; err != nil {
			t.Fatalf("task: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := db.Create(&models.HoursEntry{JobID: job.ID, WorkerID: &worker.ID, DateSpent: time.Now(), Hours: 2}).Error; err != nil {
			t.Fatalf("hours: %v", err)
		}
	}
	if err := db.Create(&models.ExtraService{JobID: job.ID, ServiceName: "Materiál", Cost: 100}).Error; err != nil {
		t.Fatalf("extra: %v", err)
	}
	if err := db.Create(&models.Invoice{JobID: job.ID, InvoiceNumber: "F-1", InvoiceDate: time.Now(), DueDate: time.Now(), TotalPrice: 100, PaymentStatus: models.PaymentUnpaid}).Error; err != nil {
		t.Fatalf("invoice: %v", err)
	}

	if err := svc.Delete(job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var tasks, hours, extras, invoices, jobs int64
	db.Model(&models.Task{}).Where("job_id = ?", job.ID).Count(&tasks)
	db.Model(&models.HoursEntry{}).Where("job_id = ?", job.ID).Count(&hours)
	db.Model(&models.ExtraService{}).Where("job_id = ?", job.ID).Count(&extras)
	db.Model(&models.Invoice{}).Where("job_id = ?", job.ID).Count(&invoices)
	db.Model(&models.Job{}).Where("id = ?", job.ID).Count(&jobs)
	if tasks != 0 || hours != 0 || extras != 0 || invoices != 0 || jobs != 0 {
		t.Fatalf("cascade incomplete: tasks=%d hours=%d extras=%d invoices=%d jobs=%d", tasks, hours, extras, invoices, jobs)
	}
	// The worker itself survives.
	var workers int64
	db.Model(&models.Worker{}).Count(&workers)
	if workers != 1 {
		t.Fatalf("worker should survive job delete, got %d rows", workers)
	}
}

func TestJobListIncludesTotalsAndCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	customer := models.Customer{Name: "Novák"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}
	job := models.Job{JobNumber: "Z-7", JobName: "Plot", Status: DefaultStatus, CustomerID: &customer.ID, HourlyRate: floatPtr(300)}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("job: %v", err)
	}
	if err := db.Create(&models.HoursEntry{JobID: job.ID, DateSpent: time.Now(), Hours: 2}).Error; err != nil {
		t.Fatalf("hours: %v", err)
	}
	rows, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(rows))
	}
	if rows[0].CustomerName != "Novák" {
		t.Fatalf("customer name not joined: %q", rows[0].CustomerName)
	}
	if rows[0].TotalHours != 2 || rows[0].TotalPrice != 600 {
		t.Fatalf("totals wrong: hours=%v price=%v", rows[0].TotalHours, rows[0].TotalPrice)
	}
}

func TestDashboardData(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	now := time.Now()
	due := now.AddDate(0, 0, 5)
	far := now.AddDate(0, 0, 40)
	db.Create(&models.Job{JobNumber: "Z-8", JobName: "Brzy", Status: DefaultStatus, DueDate: &due})
	db.Create(&models.Job{JobNumber: "Z-9", JobName: "Později", Status: DefaultStatus, DueDate: &far})
	d, err := svc.DashboardData(now)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.JobCount != 2 {
		t.Fatalf("job count = %d want 2", d.JobCount)
	}
	if len(d.UpcomingJobs) != 1 || d.UpcomingJobs[0].JobNumber != "Z-8" {
		t.Fatalf("upcoming jobs wrong: %+v", d.UpcomingJobs)
	}
}
