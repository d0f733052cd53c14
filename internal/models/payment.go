package models

import "time"

// Payment is one submitted installment. Payments carry no client-visible ID:
// the admin update addresses a payment by exact (phone, created_at) equality,
// so CreatedAt must round-trip through the API at full stored precision.
// Name denormalizes the customer's full name at submission time and is not
// refreshed afterwards.
type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	Phone          string    `gorm:"size:10;not null;index:idx_payments_phone_created" json:"phone"`
	Name           string    `gorm:"size:255" json:"name"`
	PaidAmount     float64   `gorm:"not null" json:"paid_amount"`
	UTRNumber      string    `gorm:"column:utr_number;size:100" json:"utr_number"`
	PaymentDate    time.Time `gorm:"index" json:"payment_date"`
	ApprovalStatus string    `gorm:"size:20;not null;index" json:"approval_status"`
	CreatedAt      time.Time `gorm:"index:idx_payments_phone_created" json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}
