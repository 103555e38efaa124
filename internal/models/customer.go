package models

import "time"

// Customer entity
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"` // jméno nebo název zákazníka
	Company   string
	Address   string
	Phone     string
	Email     string
	Jobs      []Job `gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
