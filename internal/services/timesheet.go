package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
	"github.com/Gelbic/zakazky/internal/validation"
)

type HoursInput struct {
	JobID       uint
	WorkerID    *uint
	DateSpent   time.Time
	Hours       float64
	Description string
}

type ExtraInput struct {
	JobID       uint
	ServiceName string
	Cost        float64
	Notes       string
}

// TimesheetService records hours entries and extra service costs on jobs.
type TimesheetService struct{ DB *gorm.DB }

func NewTimesheetService(db *gorm.DB) *TimesheetService { return &TimesheetService{DB: db} }

func (s *TimesheetService) AddHours(in HoursInput) (*models.HoursEntry, error) {
	v := validation.Violations{}
	validation.PositiveFloat("hours", in.Hours, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	if err := requireJob(s.DB, in.JobID); err != nil {
		return nil, err
	}
	if in.WorkerID != nil {
		var count int64
		if err := s.DB.Model(&models.Worker{}).Where("id = ?", *in.WorkerID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: worker %d", ErrNotFound, *in.WorkerID)
		}
	}
	if in.DateSpent.IsZero() {
		in.DateSpent = time.Now()
	}
	e := models.HoursEntry{JobID: in.JobID, WorkerID: in.WorkerID, DateSpent: in.DateSpent, Hours: in.Hours, Description: in.Description}
	if err := s.DB.Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *TimesheetService) AddExtra(in ExtraInput) (*models.ExtraService, error) {
	v := validation.Violations{}
	validation.Required("service_name", in.ServiceName, v)
	validation.PositiveFloat("cost", in.Cost, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	if err := requireJob(s.DB, in.JobID); err != nil {
		return nil, err
	}
	e := models.ExtraService{JobID: in.JobID, ServiceName: in.ServiceName, Cost: in.Cost, Notes: in.Notes}
	if err := s.DB.Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
