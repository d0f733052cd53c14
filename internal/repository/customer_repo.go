package repository

import (
	"goldscheme/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *models.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) GetByPhone(phone string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.Where("phone = ?", phone).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Exists(phone string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

// UpdateFields applies a partial update and reports how many rows matched,
// so callers can distinguish "no such customer" from success.
func (r *CustomerRepository) UpdateFields(phone string, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Customer{}).Where("phone = ?", phone).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *CustomerRepository) ListOverview() ([]models.CustomerOverview, error) {
	var out []models.CustomerOverview
	err := r.db.Model(&models.Customer{}).
		Select("phone", "full_name", "approval_status", "created_at").
		Find(&out).Error
	return out, err
}

func (r *CustomerRepository) ListAll() ([]models.Customer, error) {
	var out []models.Customer
	err := r.db.Find(&out).Error
	return out, err
}
