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

// LedgerService owns customer records: enrollment, the admin approval
// workflow, and the legacy last-month-paid bookkeeping.
type LedgerService struct {
	customers *repository.CustomerRepository
}

func NewLedgerService(customers *repository.CustomerRepository) *LedgerService {
	return &LedgerService{customers: customers}
}

type CreateCustomerInput struct {
	Phone        string
	FullName     string
	Address      string
	Password     string
	SelectedPack *string
	StartDate    time.Time
	TotalMonths  int
}

// Create enrolls a new customer in pending state. The existence check keeps
// the duplicate-phone contract readable, and the phone primary key backstops
// the race where two creates pass the check concurrently: the second insert
// fails in the store instead of producing a second row.
func (s *LedgerService) Create(in CreateCustomerInput) error {
	exists, err := s.customers.Exists(in.Phone)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicatePhone
	}
	return s.customers.Create(&models.Customer{
		Phone:          in.Phone,
		FullName:       in.FullName,
		Address:        in.Address,
		Password:       in.Password,
		SelectedPack:   in.SelectedPack,
		StartDate:      in.StartDate,
		TotalMonths:    in.TotalMonths,
		ApprovalStatus: domain.StatusPending,
		CreatedAt:      time.Now(),
	})
}

type UpdateCustomerInput struct {
	Phone          string
	ApprovalStatus *string
	LastMonthPaid  *time.Time
}

// Update applies an admin update: approval status, last month paid, or both.
// When last_month_paid moves, the cached remaining_emi is recomputed as
// max(total_months - months_paid, 0) where months_paid counts the start month
// itself (paying within the start month means one installment down).
func (s *LedgerService) Update(in UpdateCustomerInput) ([]string, error) {
	c, err := s.customers.GetByPhone(in.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	var updated []string
	if in.ApprovalStatus != nil {
		fields["approval_status"] = *in.ApprovalStatus
		updated = append(updated, "approval_status")
	}
	if in.LastMonthPaid != nil {
		monthsPaid := schedule.MonthDiff(c.StartDate, *in.LastMonthPaid) + 1
		fields["last_month_paid"] = *in.LastMonthPaid
		fields["remaining_emi"] = schedule.RemainingEMI(c.TotalMonths, monthsPaid)
		updated = append(updated, "last_month_paid", "remaining_emi")
	}
	if len(fields) == 0 {
		return nil, nil
	}
	if _, err := s.customers.UpdateFields(in.Phone, fields); err != nil {
		return nil, err
	}
	return updated, nil
}

// Get returns the customer along with the schedule end date: start_date plus
// total_months calendar months, month-end clamped.
func (s *LedgerService) Get(phone string) (*models.Customer, time.Time, error) {
	c, err := s.customers.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, domain.ErrNotFound
		}
		return nil, time.Time{}, err
	}
	return c, schedule.AddMonths(c.StartDate, c.TotalMonths), nil
}

func (s *LedgerService) ListOverview() ([]models.CustomerOverview, error) {
	return s.customers.ListOverview()
}

func (s *LedgerService) ListFull() ([]models.Customer, error) {
	return s.customers.ListAll()
}
