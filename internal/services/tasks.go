package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
	"github.com/Gelbic/zakazky/internal/validation"
)

type TaskInput struct {
	JobID    uint
	TaskName string
	Notes    string
	DueDate  *time.Time
}

type TaskService struct{ DB *gorm.DB }

func NewTaskService(db *gorm.DB) *TaskService { return &TaskService{DB: db} }

func (s *TaskService) Add(in TaskInput) (*models.Task, error) {
	v := validation.Violations{}
	validation.Required("task_name", in.TaskName, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	if err := requireJob(s.DB, in.JobID); err != nil {
		return nil, err
	}
	t := models.Task{JobID: in.JobID, TaskName: in.TaskName, Notes: in.Notes, DueDate: in.DueDate}
	if err := s.DB.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Toggle flips the completion flag. Applying it twice restores the
// original state.
func (s *TaskService) Toggle(id uint) (*models.Task, error) {
	var t models.Task
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: task %d", ErrNotFound, id)
			}
			return err
		}
		t.IsCompleted = !t.IsCompleted
		return tx.Model(&t).Update("is_completed", t.IsCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// requireJob fails with ErrNotFound when the referenced job is missing.
func requireJob(db *gorm.DB, jobID uint) error {
	var count int64
	if err := db.Model(&models.Job{}).Where("id = ?", jobID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: job %d", ErrNotFound, jobID)
	}
	return nil
}
