package service

import (
	"testing"
	"time"

	"goldscheme/internal/database"
	"goldscheme/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a second pooled connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newServices(t *testing.T) (*LedgerService, *AccountingService) {
	t.Helper()
	db := newTestDB(t)
	customers := repository.NewCustomerRepository(db)
	payments := repository.NewPaymentRepository(db)
	return NewLedgerService(customers), NewAccountingService(customers, payments)
}

func mustCreateCustomer(t *testing.T, ledger *LedgerService, phone string, startDate time.Time, totalMonths int) {
	t.Helper()
	err := ledger.Create(CreateCustomerInput{
		Phone:       phone,
		FullName:    "Asha Rao",
		Address:     "12 Temple Street",
		Password:    "secret123",
		StartDate:   startDate,
		TotalMonths: totalMonths,
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
}
