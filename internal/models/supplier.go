package models

import "time"

// SupplierInfo holds the issuing business's own billing identity, used when
// rendering invoices. Singleton: at most one row is ever used.
type SupplierInfo struct {
	ID             uint   `gorm:"primaryKey"`
	CompanyName    string `gorm:"not null"`
	Address        string
	ICO            string // IČO (tax id)
	DIC            string // DIČ (VAT id)
	BankAccount    string
	BankCode       string
	VariableSymbol string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
