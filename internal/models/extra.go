package models

import "time"

// ExtraService is an itemized extra cost on a job (materiál, doprava,
// subdodávka, ...) outside the base price / hourly calculation.
type ExtraService struct {
	ID          uint    `gorm:"primaryKey"`
	JobID       uint    `gorm:"not null;index"`
	ServiceName string  `gorm:"not null"`
	Cost        float64 `gorm:"not null"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
