package models

import "time"

// Invoice is generated at most once per job (unique index on JobID).
// TotalPrice is a snapshot frozen at creation time; later changes to the
// job's hours or extras never touch it.
type Invoice struct {
	ID            uint      `gorm:"primaryKey"`
	JobID         uint      `gorm:"uniqueIndex;not null"`
	InvoiceNumber string    `gorm:"not null"`
	InvoiceDate   time.Time `gorm:"not null"`
	DueDate       time.Time `gorm:"not null"`
	PaymentType   string
	TotalPrice    float64 `gorm:"not null"`
	PaymentStatus string  `gorm:"not null;default:'Nezaplaceno'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Paid reports whether the invoice has been settled.
func (i *Invoice) Paid() bool { return i.PaymentStatus == PaymentPaid }
