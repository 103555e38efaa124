package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
	"github.com/Gelbic/zakazky/internal/validation"
)

type SupplierInput struct {
	CompanyName    string
	Address        string
	ICO            string
	DIC            string
	BankAccount    string
	BankCode       string
	VariableSymbol string
}

// SupplierService manages the singleton supplier-info record shown on
// invoices.
type SupplierService struct{ DB *gorm.DB }

func NewSupplierService(db *gorm.DB) *SupplierService { return &SupplierService{DB: db} }

// Get returns the supplier record if present, otherwise nil.
func (s *SupplierService) Get() (*models.SupplierInfo, error) {
	var info models.SupplierInfo
	err := s.DB.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Upsert creates the record on first save and updates it afterwards; the
// table never grows past one row.
func (s *SupplierService) Upsert(in SupplierInput) (*models.SupplierInfo, error) {
	v := validation.Violations{}
	validation.Required("company_name", in.CompanyName, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	var info models.SupplierInfo
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&info).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		info.CompanyName = in.CompanyName
		info.Address = in.Address
		info.ICO = in.ICO
		info.DIC = in.DIC
		info.BankAccount = in.BankAccount
		info.BankCode = in.BankCode
		info.VariableSymbol = in.VariableSymbol
		return tx.Save(&info).Error
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}
