package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Worker{}, &models.Job{}, &models.Task{},
		&models.HoursEntry{}, &models.ExtraService{}, &models.Invoice{}, &models.SupplierInfo{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedJob(t *testing.T, db *gorm.DB, number string) *models.Job {
	t.Helper()
	job := models.Job{JobNumber: number, JobName: "Oprava střechy", Status: DefaultStatus, PaymentStatus: models.PaymentUnpaid}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return &job
}

func seedWorker(t *testing.T, db *gorm.DB, name string) *models.Worker {
	t.Helper()
	w := models.Worker{Name: name}
	if err := db.Create(&w).Error; err != nil {
		t.Fatalf("seed worker: %v", err)
	}
	return &w
}

func floatPtr(f float64) *float64 { return &f }

func datePtr(t time.Time) *time.Time { return &t }
