package models

import "time"

// Worker logs hours on jobs. Deleting a worker detaches their hours
// entries (worker_id goes NULL) instead of deleting them.
type Worker struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoursEntry is one logged block of work on a job.
type HoursEntry struct {
	ID          uint  `gorm:"primaryKey"`
	JobID       uint  `gorm:"not null;index"`
	WorkerID    *uint `gorm:"index"` // NULL after the worker is deleted
	Worker      *Worker
	DateSpent   time.Time `gorm:"not null"`
	Hours       float64   `gorm:"not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
