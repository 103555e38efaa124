package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
	"github.com/Gelbic/zakazky/internal/validation"
)

type WorkerInput struct {
	Name  string
	Email string
	Phone string
}

type WorkerService struct{ DB *gorm.DB }

func NewWorkerService(db *gorm.DB) *WorkerService { return &WorkerService{DB: db} }

// Create inserts a worker. Names are unique.
func (s *WorkerService) Create(in WorkerInput) (*models.Worker, error) {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	w := models.Worker{Name: in.Name, Email: in.Email, Phone: in.Phone}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Worker{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: worker %q", ErrConflict, in.Name)
		}
		return tx.Create(&w).Error
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Delete detaches the worker from their hours entries (worker_id goes NULL,
// the logged hours survive) and removes the worker row.
func (s *WorkerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var w models.Worker
		if err := tx.First(&w, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: worker %d", ErrNotFound, id)
			}
			return err
		}
		if err := tx.Model(&models.HoursEntry{}).Where("worker_id = ?", id).Update("worker_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Worker{}, id).Error
	})
}

func (s *WorkerService) List() ([]models.Worker, error) {
	var workers []models.Worker
	if err := s.DB.Order("name asc").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}
