package repository

import (
	"time"

	"goldscheme/internal/domain"
	"goldscheme/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

// UpdateApproval addresses a payment by exact (phone, created_at) equality —
// the table has no client-visible ID. A timestamp that differs from the
// stored value by any amount, including sub-second truncation, matches
// nothing; the returned count lets the caller surface that as not-found.
func (r *PaymentRepository) UpdateApproval(phone string, createdAt time.Time, status string) (int64, error) {
	res := r.db.Model(&models.Payment{}).
		Where("phone = ? AND created_at = ?", phone, createdAt).
		Update("approval_status", status)
	return res.RowsAffected, res.Error
}

// ListApprovedByPhone returns a customer's approved payments, newest first.
func (r *PaymentRepository) ListApprovedByPhone(phone string) ([]models.Payment, error) {
	var out []models.Payment
	err := r.db.
		Where("phone = ? AND approval_status = ?", phone, domain.StatusApproved).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListAll() ([]models.Payment, error) {
	var out []models.Payment
	err := r.db.Order("payment_date DESC").Find(&out).Error
	return out, err
}
