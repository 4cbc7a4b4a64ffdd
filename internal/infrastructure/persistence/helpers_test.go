package persistence

import (
	"testing"
	"time"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(sqliteDSN(":memory:")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testProfile(cpf, email string) customer.Profile {
	return customer.Profile{
		Name:      "Maria",
		Surname:   "Silva",
		Email:     email,
		CPF:       cpf,
		Phone:     "11987654321",
		BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func testAddress(street string) customer.Address {
	return customer.Address{
		Street:     street,
		Number:     "100",
		District:   "Centro",
		City:       "São Paulo",
		State:      "SP",
		PostalCode: "01001-000",
	}
}

func createTestCustomer(t *testing.T, repo *GormCustomerRepository, cpf, email string, addrs ...customer.Address) *customer.Customer {
	t.Helper()
	c := customer.NewCustomer(testProfile(cpf, email), addrs, testNow)
	require.NoError(t, repo.Create(t.Context(), c))
	return c
}
