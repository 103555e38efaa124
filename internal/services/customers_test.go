package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Gelbic/zakazky/internal/models"
)

func TestCustomerCreateRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	if _, err := svc.Create(CustomerInput{Company: "Firma s.r.o."}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation got %v", err)
	}
	c, err := svc.Create(CustomerInput{Name: "Novák", Email: "novak@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestCustomerUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	c, err := svc.Create(CustomerInput{Name: "Dvořák"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(c.ID, CustomerInput{Name: "Dvořák", Phone: "777123456"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.Get(c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Phone != "777123456" {
		t.Fatalf("phone = %q", got.Phone)
	}
	if _, err := svc.Update(c.ID, CustomerInput{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation got %v", err)
	}
	if _, err := svc.Update(999, CustomerInput{Name: "Nikdo"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestCustomerDeleteCascadesThroughJobs(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	c, err := svc.Create(CustomerInput{Name: "Svoboda"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	for _, num := range []string{"Z-400", "Z-401"} {
		job := models.Job{JobNumber: num, JobName: "Zakázka", Status: DefaultStatus, CustomerID: &c.ID}
		if err := db.Create(&job).Error; err != nil {
			t.Fatalf("job: %v", err)
		}
		db.Create(&models.Task{JobID: job.ID, TaskName: "úkol"})
		db.Create(&models.HoursEntry{JobID: job.ID, DateSpent: time.Now(), Hours: 1})
		db.Create(&models.Invoice{JobID: job.ID, InvoiceNumber: "F-" + num, InvoiceDate: time.Now(), DueDate: time.Now(), PaymentStatus: models.PaymentUnpaid})
	}

	if err := svc.Delete(c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var jobs, tasks, hours, invoices, customers int64
	db.Model(&models.Job{}).Count(&jobs)
	db.Model(&models.Task{}).Count(&tasks)
	db.Model(&models.HoursEntry{}).Count(&hours)
	db.Model(&models.Invoice{}).Count(&invoices)
	db.Model(&models.Customer{}).Count(&customers)
	if jobs != 0 || tasks != 0 || hours != 0 || invoices != 0 || customers != 0 {
		t.Fatalf("cascade incomplete: jobs=%d tasks=%d hours=%d invoices=%d customers=%d", jobs, tasks, hours, invoices, customers)
	}
}

func TestCustomerDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	if err := svc.Delete(55); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
