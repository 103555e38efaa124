package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
	"github.com/Gelbic/zakazky/internal/validation"
)

// JobInput carries the editable job fields from a create/edit form.
type JobInput struct {
	JobNumber   string
	JobName     string
	Description string
	CustomerID  *uint
	Status      string
	DueDate     *time.Time
	Price       *float64
	HourlyRate  *float64
}

type JobService struct {
	DB      *gorm.DB
	Pricing *PricingService
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db, Pricing: NewPricingService()}
}

// DefaultStatus is the initial open status when a form leaves it blank.
const DefaultStatus = "Přijatá"

// ValidateStatusChange rejects transitions the lifecycle does not allow.
// Open statuses are free text, but the two closed states are reached only
// through SetDone and invoice creation and are never reverted by an edit.
func ValidateStatusChange(current, next string) error {
	if next == current {
		return nil
	}
	if next == models.StatusDone || next == models.StatusInvoiced {
		return fmt.Errorf("%w: status %q lze nastavit jen příslušnou akcí", ErrValidation, next)
	}
	if current == models.StatusDone || current == models.StatusInvoiced {
		return fmt.Errorf("%w: stav %q nelze změnit úpravou zakázky", ErrValidation, current)
	}
	return nil
}

func (s *JobService) validate(in JobInput) error {
	v := validation.Violations{}
	validation.Required("job_number", in.JobNumber, v)
	validation.Required("job_name", in.JobName, v)
	if in.Price != nil {
		validation.NonNegativeFloat("price", *in.Price, v)
	}
	if in.HourlyRate != nil {
		validation.NonNegativeFloat("hourly_rate", *in.HourlyRate, v)
	}
	if !v.Empty() {
		return fmt.Errorf("%w: %v", ErrValidation, v)
	}
	return nil
}

// Create inserts a new job. The job number must be globally unique.
func (s *JobService) Create(in JobInput) (*models.Job, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = DefaultStatus
	}
	if err := ValidateStatusChange(DefaultStatus, in.Status); err != nil {
		return nil, err
	}
	job := models.Job{
		JobNumber:     in.JobNumber,
		JobName:       in.JobName,
		Description:   in.Description,
		CustomerID:    in.CustomerID,
		Status:        in.Status,
		DueDate:       in.DueDate,
		Price:         in.Price,
		HourlyRate:    in.HourlyRate,
		PaymentStatus: models.PaymentUnpaid,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Job{}).Where("job_number = ?", in.JobNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: job_number %q", ErrConflict, in.JobNumber)
		}
		return tx.Create(&job).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update applies edited fields to an existing job. The payment mirror
// fields are owned by the invoice lifecycle and stay untouched here.
func (s *JobService) Update(id uint, in JobInput) (*models.Job, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	var job models.Job
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: job %d", ErrNotFound, id)
			}
			return err
		}
		if in.Status == "" {
			in.Status = job.Status
		}
		if err := ValidateStatusChange(job.Status, in.Status); err != nil {
			return err
		}
		if in.JobNumber != job.JobNumber {
			var count int64
			if err := tx.Model(&models.Job{}).Where("job_number = ? AND id <> ?", in.JobNumber, id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: job_number %q", ErrConflict, in.JobNumber)
			}
		}
		job.JobNumber = in.JobNumber
		job.JobName = in.JobName
		job.Description = in.Description
		job.CustomerID = in.CustomerID
		job.Status = in.Status
		job.DueDate = in.DueDate
		job.Price = in.Price
		job.HourlyRate = in.HourlyRate
		return tx.Save(&job).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SetDone transitions a job to Dokončená. One-way; invoiced jobs keep
// their status.
func (s *JobService) SetDone(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: job %d", ErrNotFound, id)
			}
			return err
		}
		if job.Status == models.StatusInvoiced {
			return fmt.Errorf("%w: fakturovanou zakázku nelze vrátit do stavu %q", ErrValidation, models.StatusDone)
		}
		return tx.Model(&job).Update("status", models.StatusDone).Error
	})
}

// Delete removes the job and everything it owns (tasks, hours entries,
// extra services, invoice) in one transaction.
func (s *JobService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: job %d", ErrNotFound, id)
			}
			return err
		}
		return deleteJobCascade(tx, id)
	})
}

// deleteJobCascade removes a job's children and the job row itself. Callers
// must hold a transaction.
func deleteJobCascade(tx *gorm.DB, jobID uint) error {
	if err := tx.Where("job_id = ?", jobID).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	if err := tx.Where("job_id = ?", jobID).Delete(&models.HoursEntry{}).Error; err != nil {
		return err
	}
	if err := tx.Where("job_id = ?", jobID).Delete(&models.ExtraService{}).Error; err != nil {
		return err
	}
	if err := tx.Where("job_id = ?", jobID).Delete(&models.Invoice{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Job{}, jobID).Error
}

// JobSummary is a list row projection with joined customer name and the
// derived totals.
type JobSummary struct {
	models.Job
	CustomerName string
	TotalHours   float64
	TotalPrice   float64
}

// List returns all jobs ordered by due date with customer names and
// computed totals.
func (s *JobService) List() ([]JobSummary, error) {
	var jobs []models.Job
	if err := s.DB.Preload("Customer").Preload("HoursEntries").Preload("Extras").
		Order("due_date asc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return s.summarize(jobs), nil
}

func (s *JobService) summarize(jobs []models.Job) []JobSummary {
	out := make([]JobSummary, 0, len(jobs))
	for i := range jobs {
		row := JobSummary{Job: jobs[i]}
		if jobs[i].Customer != nil {
			row.CustomerName = jobs[i].Customer.Name
		}
		row.TotalHours = s.Pricing.TotalHours(&jobs[i])
		row.TotalPrice = s.Pricing.ComputeTotal(&jobs[i])
		out = append(out, row)
	}
	return out
}

// JobDetail bundles everything a detail view needs.
type JobDetail struct {
	Job        models.Job
	TotalHours float64
	TotalPrice float64
}

// Detail loads one job with all associations and derived totals.
func (s *JobService) Detail(id uint) (*JobDetail, error) {
	var job models.Job
	err := s.DB.Preload("Customer").Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("due_date asc") }).
		Preload("HoursEntries", func(db *gorm.DB) *gorm.DB { return db.Order("date_spent desc") }).
		Preload("HoursEntries.Worker").
		Preload("Extras").Preload("Invoice").
		First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &JobDetail{
		Job:        job,
		TotalHours: s.Pricing.TotalHours(&job),
		TotalPrice: s.Pricing.ComputeTotal(&job),
	}, nil
}

// Dashboard aggregates for the landing page: record counts, the five jobs
// with the nearest due dates, and jobs due within the next ten days.
type Dashboard struct {
	JobCount      int64
	CustomerCount int64
	NearestJobs   []JobSummary
	UpcomingJobs  []JobSummary
}

func (s *JobService) DashboardData(now time.Time) (*Dashboard, error) {
	d := &Dashboard{}
	if err := s.DB.Model(&models.Job{}).Count(&d.JobCount).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Customer{}).Count(&d.CustomerCount).Error; err != nil {
		return nil, err
	}
	var nearest []models.Job
	if err := s.DB.Preload("Customer").Preload("HoursEntries").Preload("Extras").
		Order("due_date asc").Limit(5).Find(&nearest).Error; err != nil {
		return nil, err
	}
	d.NearestJobs = s.summarize(nearest)

	today := now.Truncate(24 * time.Hour)
	inTenDays := today.AddDate(0, 0, 10)
	var upcoming []models.Job
	if err := s.DB.Preload("Customer").Preload("HoursEntries").Preload("Extras").
		Where("due_date BETWEEN ? AND ?", today, inTenDays).
		Order("due_date asc").Find(&upcoming).Error; err != nil {
		return nil, err
	}
	d.UpcomingJobs = s.summarize(upcoming)
	return d, nil
}
