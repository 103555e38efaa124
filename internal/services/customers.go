package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/models"
	"github.com/Gelbic/zakazky/internal/validation"
)

type CustomerInput struct {
	Name    string
	Company string
	Address string
	Phone   string
	Email   string
}

type CustomerService struct{ DB *gorm.DB }

func NewCustomerService(db *gorm.DB) *CustomerService { return &CustomerService{DB: db} }

func (s *CustomerService) Create(in CustomerInput) (*models.Customer, error) {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	c := models.Customer{Name: in.Name, Company: in.Company, Address: in.Address, Phone: in.Phone, Email: in.Email}
	if err := s.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Update(id uint, in CustomerInput) (*models.Customer, error) {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	if !v.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, v)
	}
	var c models.Customer
	if err := s.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, id)
		}
		return nil, err
	}
	c.Name, c.Company, c.Address, c.Phone, c.Email = in.Name, in.Company, in.Address, in.Phone, in.Email
	if err := s.DB.Save(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes the customer and cascades through every owned job and its
// children, all in one transaction.
func (s *CustomerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var c models.Customer
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %d", ErrNotFound, id)
			}
			return err
		}
		var jobIDs []uint
		if err := tx.Model(&models.Job{}).Where("customer_id = ?", id).Pluck("id", &jobIDs).Error; err != nil {
			return err
		}
		for _, jid := range jobIDs {
			if err := deleteJobCascade(tx, jid); err != nil {
				return err
			}
		}
		return tx.Delete(&models.Customer{}, id).Error
	})
}

func (s *CustomerService) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("name asc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &c, nil
}
