package models

import "time"

// Job statuses. Open statuses are free text ("Přijatá", "V realizaci", ...);
// the two closed states below are reached only through lifecycle operations,
// never through plain edits.
const (
	StatusDone     = "Dokončená"
	StatusInvoiced = "Fakturovaná"
)

// Payment statuses shared by Job (mirror) and Invoice (authoritative).
const (
	PaymentUnpaid = "Nezaplaceno"
	PaymentPaid   = "Uhrazeno"
)

// Job is a unit of billable work (zakázka) identified by a unique number.
// Price and HourlyRate may both be set: the fixed price acts as a base fee
// and hourly work is billed on top of it.
type Job struct {
	ID          uint   `gorm:"primaryKey"`
	JobNumber   string `gorm:"uniqueIndex;not null"`
	JobName     string `gorm:"not null"`
	Description string
	CustomerID  *uint
	Customer    *Customer `gorm:"foreignKey:CustomerID"`
	Status      string    `gorm:"not null"`
	DueDate     *time.Time
	Price       *float64 // pevná cena
	HourlyRate  *float64 // hodinová sazba

	// Payment mirror fields. Written only by the invoice lifecycle,
	// kept for backward-compatible job listings.
	TotalPaid     float64
	PaymentStatus string `gorm:"not null;default:'Nezaplaceno'"`
	InvoiceDate   *time.Time

	Tasks        []Task         `gorm:"foreignKey:JobID"`
	HoursEntries []HoursEntry   `gorm:"foreignKey:JobID"`
	Extras       []ExtraService `gorm:"foreignKey:JobID"`
	Invoice      *Invoice       `gorm:"foreignKey:JobID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Closed returns true once the job left the open states.
func (j *Job) Closed() bool {
	return j.Status == StatusDone || j.Status == StatusInvoiced
}
