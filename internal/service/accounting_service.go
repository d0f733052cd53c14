package service

import (
	"errors"
	"time"

	"goldscheme/internal/domain"
	"goldscheme/internal/models"
	"goldscheme/internal/repository"
	"goldscheme/internal/schedule"

	"gorm.io/gorm"
)

// AccountingService owns payment records and the approved-only entitlement
// math: one approved payment counts as one month paid.
type AccountingService struct {
	customers *repository.CustomerRepository
	payments  *repository.PaymentRepository
}

func NewAccountingService(customers *repository.CustomerRepository, payments *repository.PaymentRepository) *AccountingService {
	return &AccountingService{customers: customers, payments: payments}
}

// Summary is the per-customer entitlement view. PaymentDates is populated
// only on the authenticated path; it is never nil so the JSON field is
// always a list.
type Summary struct {
	Phone           string   `json:"phone"`
	FullName        string   `json:"full_name"`
	TotalMonths     int      `json:"total_months"`
	PaymentsCount   int      `json:"payments_count"`
	TotalPaid       float64  `json:"total_paid"`
	RemainingMonths int      `json:"remaining_months"`
	PaymentDates    []string `json:"payment_dates"`
}

// Record submits a pending payment for an existing customer, denormalizing
// the customer's name onto the row. payment_date and created_at come from the
// same clock read so they cannot diverge. Returns the customer's name for the
// confirmation message.
func (s *AccountingService) Record(phone string, paidAmount float64, utrNumber string) (string, error) {
	c, err := s.customers.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	now := time.Now()
	err = s.payments.Create(&models.Payment{
		Phone:          phone,
		Name:           c.FullName,
		PaidAmount:     paidAmount,
		UTRNumber:      utrNumber,
		PaymentDate:    now,
		ApprovalStatus: domain.StatusPending,
		CreatedAt:      now,
	})
	if err != nil {
		return "", err
	}
	return c.FullName, nil
}

// UpdateApproval flips the approval status of the payment identified by
// exact (phone, created_at) equality.
func (s *AccountingService) UpdateApproval(phone string, createdAt time.Time, status string) error {
	matched, err := s.payments.UpdateApproval(phone, createdAt, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Summarize aggregates a customer's approved payments into the entitlement
// view. Pending and rejected payments count for nothing.
func (s *AccountingService) Summarize(phone string) (*Summary, error) {
	c, err := s.customers.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s.summarize(c, false)
}

// SummarizeAuth is Summarize gated by the customer's password and extended
// with the ordered payment dates. The comparison is plaintext equality, as
// the live system stores passwords.
func (s *AccountingService) SummarizeAuth(phone, password string) (*Summary, error) {
	c, err := s.customers.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if c.Password != password {
		return nil, domain.ErrUnauthorized
	}
	return s.summarize(c, true)
}

// SummarizeAll produces the entitlement view for every customer. With zero
// customers it reports not-found. A payment fetch failure for any customer
// aborts the whole batch; there is no partial-result policy.
func (s *AccountingService) SummarizeAll() ([]Summary, error) {
	customers, err := s.customers.ListAll()
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]Summary, 0, len(customers))
	for i := range customers {
		sum, err := s.summarize(&customers[i], false)
		if err != nil {
			return nil, err
		}
		out = append(out, *sum)
	}
	return out, nil
}

func (s *AccountingService) ListAll() ([]models.Payment, error) {
	return s.payments.ListAll()
}

func (s *AccountingService) summarize(c *models.Customer, withDates bool) (*Summary, error) {
	approved, err := s.payments.ListApprovedByPhone(c.Phone)
	if err != nil {
		return nil, err
	}
	var totalPaid float64
	for _, p := range approved {
		totalPaid += p.PaidAmount
	}
	dates := []string{}
	if withDates {
		for _, p := range approved {
			dates = append(dates, p.PaymentDate.Format(time.RFC3339Nano))
		}
	}
	return &Summary{
		Phone:           c.Phone,
		FullName:        c.FullName,
		TotalMonths:     c.TotalMonths,
		PaymentsCount:   len(approved),
		TotalPaid:       totalPaid,
		RemainingMonths: schedule.RemainingEMI(c.TotalMonths, len(approved)),
		PaymentDates:    dates,
	}, nil
}
