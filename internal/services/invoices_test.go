package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Gelbic/zakazky/internal/models"
)

func TestInvoiceCreateFreezesTotalAndFlipsStatus(t *testing.T) {
	db := newTestDB(t)
	job := seedJob(t, db, "Z-100")
	db.Model(job).Update("hourly_rate", 500)
	for _, h := range []float64{2, 3, 1.5} {
		if err := db.Create(&models.HoursEntry{JobID: job.ID, DateSpent: time.Now(), Hours: h}).Error; err != nil {
			t.Fatalf("hours: %v", err)
		}
	}
	db.Create(&models.ExtraService{JobID: job.ID, ServiceName: "Materiál", Cost: 100})
	db.Create(&models.ExtraService{JobID: job.ID, ServiceName: "Doprava", Cost: 50})

	svc := NewInvoiceService(db)
	inv, err := svc.Create(job.ID, "2026-001", "převodem")
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if inv.TotalPrice != 3400 {
		t.Fatalf("frozen total = %v want 3400", inv.TotalPrice)
	}
	if inv.PaymentStatus != models.PaymentUnpaid {
		t.Fatalf("expected unpaid got %q", inv.PaymentStatus)
	}
	wantDue := inv.InvoiceDate.AddDate(0, 0, 14)
	if !inv.DueDate.Equal(wantDue) {
		t.Fatalf("due date = %v want %v", inv.DueDate, wantDue)
	}
	var reloaded models.Job
	if err := db.First(&reloaded, job.ID).Error; err != nil {
		t.Fatalf("reload job: %v", err)
	}
	if reloaded.Status != models.StatusInvoiced {
		t.Fatalf("job status = %q want %q", reloaded.Status, models.StatusInvoiced)
	}
	if reloaded.InvoiceDate == nil {
		t.Fatalf("job invoice date not set")
	}
}

func TestInvoiceSnapshotImmutable(t *testing.T) {
	db := newTestDB(t)
	job := seedJob(t, db, "Z-101")
	db.Model(job).Update("hourly_rate", 500)
	db.Create(&models.HoursEntry{JobID: job.ID, DateSpent: time.Now(), Hours: 4})

	svc := NewInvoiceService(db)
	inv, err := svc.Create(job.ID, "2026-002", "hotově")
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	frozen := inv.TotalPrice

	// More work logged after invoicing must not change the invoice.
	db.Create(&models.HoursEntry{JobID: job.ID, DateSpent: time.Now(), Hours: 10})
	db.Create(&models.ExtraService{JobID: job.ID, ServiceName: "Navíc", Cost: 999})

	refetched, err := svc.Get(inv.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if refetched.TotalPrice != frozen {
		t.Fatalf("snapshot changed: %v -> %v", frozen, refetched.TotalPrice)
	}
}

func TestInvoiceAtMostOnePerJob(t *testing.T) {
	db := newTestDB(t)
	job := seedJob(t, db, "Z-102")
	svc := NewInvoiceService(db)
	if _, err := svc.Create(job.ID, "2026-003", ""); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(job.ID, "2026-004", "")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}
	var count int64
	db.Model(&models.Invoice{}).Where("job_id = ?", job.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one invoice got %d", count)
	}
}

func TestInvoiceCreateJobMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	if _, err := svc.Create(12345, "2026-005", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestMarkPaidMirrorsOntoJobAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	job := seedJob(t, db, "Z-103")
	db.Model(job).Update("price", 2500)
	svc := NewInvoiceService(db)
	inv, err := svc.Create(job.ID, "2026-006", "převodem")
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	paid, err := svc.MarkPaid(inv.ID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.PaymentStatus != models.PaymentPaid {
		t.Fatalf("invoice status = %q want %q", paid.PaymentStatus, models.PaymentPaid)
	}
	var reloaded models.Job
	db.First(&reloaded, job.ID)
	if reloaded.PaymentStatus != models.PaymentPaid {
		t.Fatalf("job payment status = %q want %q", reloaded.PaymentStatus, models.PaymentPaid)
	}
	if reloaded.TotalPaid != inv.TotalPrice {
		t.Fatalf("job total paid = %v want frozen snapshot %v", reloaded.TotalPaid, inv.TotalPrice)
	}

	// Repeating converges without error.
	if _, err := svc.MarkPaid(inv.ID); err != nil {
		t.Fatalf("second mark paid: %v", err)
	}
	if _, err := svc.MarkPaid(99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestInvoiceListJoinsNames(t *testing.T) {
	db := newTestDB(t)
	customer := models.Customer{Name: "Dvořák"}
	db.Create(&customer)
	job := models.Job{JobNumber: "Z-104", JobName: "Pergola", Status: DefaultStatus, CustomerID: &customer.ID, Price: floatPtr(800)}
	db.Create(&job)
	svc := NewInvoiceService(db)
	if _, err := svc.Create(job.ID, "2026-007", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	rows, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(rows))
	}
	if rows[0].JobNumber != "Z-104" || rows[0].CustomerName != "Dvořák" {
		t.Fatalf("joined names wrong: %+v", rows[0])
	}
}
