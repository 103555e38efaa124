package models

import "time"

// Task is a checklist item on a job.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	JobID       uint   `gorm:"not null;index"`
	TaskName    string `gorm:"not null"`
	Notes       string
	DueDate     *time.Time
	IsCompleted bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
