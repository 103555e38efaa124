package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
	"github.com/Gelbic/zakazky/internal/validation"
)

// Payment term applied to every new invoice.
const paymentTermDays = 14

type InvoiceService struct {
	DB      *gorm.DB
	Pricing *PricingService
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db, Pricing: NewPricingService()}
}

// Create generates the invoice for a job. The computed total is frozen into
// the invoice row; the job flips to Fakturovaná. At most one invoice may
// exist per job (checked in the transaction, unique index as backstop).
func (s *InvoiceService) Create(jobID uint, invoiceNumber, paymentType string) (*models.Invoice, error) {
	v := validation.Violations{}
	validation.Required("invoice_number", invoiceNumber, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	var inv models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.Preload("HoursEntries").Preload("Extras").First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: job %d", ErrNotFound, jobID)
			}
			return err
		}
		var count int64
		if err := tx.Model(&models.Invoice{}).Where("job_id = ?", jobID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: invoice already exists for job %d", ErrConflict, jobID)
		}
		now := time.Now()
		inv = models.Invoice{
			JobID:         jobID,
			InvoiceNumber: invoiceNumber,
			InvoiceDate:   now,
			DueDate:       now.AddDate(0, 0, paymentTermDays),
			PaymentType:   paymentType,
			TotalPrice:    s.Pricing.ComputeTotal(&job),
			PaymentStatus: models.PaymentUnpaid,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		return tx.Model(&job).Updates(map[string]any{
			"status":       models.StatusInvoiced,
			"invoice_date": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// MarkPaid settles an invoice and mirrors the payment onto the owning job
// (payment_status, total_paid from the frozen snapshot). Idempotent:
// repeated calls converge to the same paid state without error.
func (s *InvoiceService) MarkPaid(invoiceID uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inv, invoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: invoice %d", ErrNotFound, invoiceID)
			}
			return err
		}
		if err := tx.Model(&inv).Update("payment_status", models.PaymentPaid).Error; err != nil {
			return err
		}
		inv.PaymentStatus = models.PaymentPaid
		return tx.Model(&models.Job{}).Where("id = ?", inv.JobID).Updates(map[string]any{
			"payment_status": models.PaymentPaid,
			"total_paid":     inv.TotalPrice,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *InvoiceService) Get(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.DB.First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invoice %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &inv, nil
}

// InvoiceRow is a list projection with the joined job and customer names.
type InvoiceRow struct {
	models.Invoice
	JobNumber    string
	JobName      string
	CustomerName string
}

// List returns all invoices, newest first, with job and customer names
// joined in.
func (s *InvoiceService) List() ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := s.DB.Model(&models.Invoice{}).
		Select("invoices.*, jobs.job_number, jobs.job_name, customers.name AS customer_name").
		Joins("JOIN jobs ON jobs.id = invoices.job_id").
		Joins("LEFT JOIN customers ON customers.id = jobs.customer_id").
		Order("invoices.invoice_date desc, invoices.id desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
