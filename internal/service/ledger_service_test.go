package service

import (
	"errors"
	"testing"
	"time"

	"goldscheme/internal/domain"
)

var start = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestLedger_Create(t *testing.T) {
	ledger, _ := newServices(t)
	mustCreateCustomer(t, ledger, "9876543210", start, 12)

	c, _, err := ledger.Get("9876543210")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.ApprovalStatus != domain.StatusPending {
		t.Errorf("ApprovalStatus = %q, want %q", c.ApprovalStatus, domain.StatusPending)
	}
	if c.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
}

func TestLedger_CreateDuplicatePhone(t *testing.T) {
	ledger, _ := newServices(t)
	mustCreateCustomer(t, ledger, "9876543210", start, 12)

	err := ledger.Create(CreateCustomerInput{
		Phone:       "9876543210",
		FullName:    "Someone Else",
		Address:     "elsewhere",
		Password:    "other",
		StartDate:   start,
		TotalMonths: 6,
	})
	if !errors.Is(err, domain.ErrDuplicatePhone) {
		t.Fatalf("Create duplicate = %v, want ErrDuplicatePhone", err)
	}

	// the first record is untouched
	c, _, err := ledger.Get("9876543210")
	if err != nil {
		t.Fatalf("Get after duplicate: %v", err)
	}
	if c.FullName != "Asha Rao" || c.TotalMonths != 12 {
		t.Errorf("record mutated by rejected duplicate: %+v", c)
	}
}

func TestLedger_UpdateApproval(t *testing.T) {
	ledger, _ := newServices(t)
	mustCreateCustomer(t, ledger, "9876543210", start, 12)

	status := domain.StatusApproved
	updated, err := ledger.Update(UpdateCustomerInput{Phone: "9876543210", ApprovalStatus: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated) != 1 || updated[0] != "approval_status" {
		t.Errorf("updated fields = %v, want [approval_status]", updated)
	}

	c, _, _ := ledger.Get("9876543210")
	if c.ApprovalStatus != domain.StatusApproved {
		t.Errorf("ApprovalStatus = %q, want approved", c.ApprovalStatus)
	}
}

func TestLedger_UpdateUnknownPhone(t *testing.T) {
	ledger, _ := newServices(t)

	status := domain.StatusApproved
	_, err := ledger.Update(UpdateCustomerInput{Phone: "1111111111", ApprovalStatus: &status})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update unknown phone = %v, want ErrNotFound", err)
	}
	// no row was inserted as a side effect
	if _, _, err := ledger.Get("1111111111"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after failed update = %v, want ErrNotFound", err)
	}
}

func TestLedger_UpdateLastMonthPaid(t *testing.T) {
	ledger, _ := newServices(t)
	mustCreateCustomer(t, ledger, "9876543210", start, 12)

	// three calendar months after start, inclusive of the start month: 4 paid
	paid := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	updated, err := ledger.Update(UpdateCustomerInput{Phone: "9876543210", LastMonthPaid: &paid})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated) != 2 {
		t.Errorf("updated fields = %v, want [last_month_paid remaining_emi]", updated)
	}

	c, _, _ := ledger.Get("9876543210")
	if c.LastMonthPaid == nil || !c.LastMonthPaid.Equal(paid) {
		t.Errorf("LastMonthPaid = %v, want %v", c.LastMonthPaid, paid)
	}
	if c.RemainingEMI == nil || *c.RemainingEMI != 8 {
		t.Errorf("RemainingEMI = %v, want 8", c.RemainingEMI)
	}
}

func TestLedger_UpdateLastMonthPaid_FloorsAtZero(t *testing.T) {
	ledger, _ := newServices(t)
	mustCreateCustomer(t, ledger, "9876543210", start, 3)

	// far past the end of the committed schedule
	paid := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if _, err := ledger.Update(UpdateCustomerInput{Phone: "9876543210", LastMonthPaid: &paid}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	c, _, _ := ledger.Get("9876543210")
	if c.RemainingEMI == nil || *c.RemainingEMI != 0 {
		t.Errorf("RemainingEMI = %v, want 0", c.RemainingEMI)
	}
}

func TestLedger_GetEndDate(t *testing.T) {
	ledger, _ := newServices(t)
	mustCreateCustomer(t, ledger, "9876543210", start, 12)

	_, endDate, err := ledger.Get("9876543210")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !endDate.Equal(want) {
		t.Errorf("end date = %v, want %v", endDate, want)
	}
}

func TestLedger_Listings(t *testing.T) {
	ledger, _ := newServices(t)
	mustCreateCustomer(t, ledger, "9876543210", start, 12)
	mustCreateCustomer(t, ledger, "9123456780", start, 6)

	overview, err := ledger.ListOverview()
	if err != nil {
		t.Fatalf("ListOverview: %v", err)
	}
	if len(overview) != 2 {
		t.Fatalf("ListOverview len = %d, want 2", len(overview))
	}
	if overview[0].Phone == "" || overview[0].FullName == "" {
		t.Errorf("overview projection missing fields: %+v", overview[0])
	}

	full, err := ledger.ListFull()
	if err != nil {
		t.Fatalf("ListFull: %v", err)
	}
	if len(full) != 2 {
		t.Fatalf("ListFull len = %d, want 2", len(full))
	}
	if full[0].Address == "" || full[0].Password == "" {
		t.Errorf("full listing should carry all fields: %+v", full[0])
	}
}
