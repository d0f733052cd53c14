package models

import "time"

// Customer is an enrolled gold-scheme saver. The phone number is the primary
// key, so duplicate enrollment is rejected by the store itself even if two
// creates race past the handler-level existence check.
//
// Password is stored and compared in plaintext. That mirrors the live system's
// contract (the customer app sends it back verbatim on the summary endpoint);
// hashing it here would break that client.
type Customer struct {
	Phone          string     `gorm:"primaryKey;size:10" json:"phone"`
	FullName       string     `gorm:"size:255;not null" json:"full_name"`
	Address        string     `gorm:"type:text" json:"address"`
	Password       string     `gorm:"size:255;not null" json:"password"`
	SelectedPack   *string    `gorm:"size:100" json:"selected_pack"`
	StartDate      time.Time  `gorm:"not null" json:"start_date"`
	TotalMonths    int        `gorm:"not null" json:"total_months"`
	ApprovalStatus string     `gorm:"size:20;not null;index" json:"approval_status"`
	LastMonthPaid  *time.Time `json:"last_month_paid"`
	RemainingEMI   *int       `gorm:"column:remaining_emi" json:"remaining_emi"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (Customer) TableName() string {
	return "goldusers"
}

// CustomerOverview is the projection returned by the admin listing: enough to
// review pending enrollments without pulling addresses and passwords.
type CustomerOverview struct {
	Phone          string    `json:"phone"`
	FullName       string    `json:"full_name"`
	ApprovalStatus string    `json:"approval_status"`
	CreatedAt      time.Time `json:"created_at"`
}
