//go:build integration

// Package integration runs the API and repositories against a real
// PostgreSQL started with testcontainers.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/clientes/backend/internal/application/catalog"
	customerapp "github.com/clientes/backend/internal/application/customer"
	"github.com/clientes/backend/internal/infrastructure/config"
	"github.com/clientes/backend/internal/infrastructure/cpf"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"github.com/clientes/backend/internal/infrastructure/migration"
	"github.com/clientes/backend/internal/infrastructure/persistence"
	"github.com/clientes/backend/internal/interfaces/http/handler"
	"github.com/clientes/backend/internal/interfaces/http/middleware"
	"github.com/clientes/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	testDBName   = "clientes_test"
	testUser     = "postgres"
	testPassword = "admin123"

	// CPFs ending with this suffix are rejected by the stub validator
	rejectedCPFSuffix = "000"
)

// TestDB is a migrated PostgreSQL database in a throwaway container
type TestDB struct {
	*persistence.Database
	Container *tcpostgres.PostgresContainer
}

// NewTestDB starts a PostgreSQL container and applies the schema.
// The container is terminated when the test ends.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase(testDBName),
		tcpostgres.WithUsername(testUser),
		tcpostgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            host,
		Port:            port.Int(),
		User:            testUser,
		Password:        testPassword,
		DBName:          testDBName,
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
		ConnMaxIdleTime: 1,
	})
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migration.EnsureSchema(db, zap.NewNop()), "Failed to migrate test database")

	return &TestDB{Database: db, Container: container}
}

// Count returns the number of rows in table matching the optional condition
func (tdb *TestDB) Count(t *testing.T, table, where string, args ...any) int64 {
	t.Helper()

	var n int64
	q := tdb.DB.Table(table)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

// NewAPI builds the HTTP engine the server runs, backed by tdb
func NewAPI(t *testing.T, tdb *TestDB) *gin.Engine {
	t.Helper()

	middleware.SetupValidator()

	customerRepo := persistence.NewGormCustomerRepository(tdb.DB)
	addressRepo := persistence.NewGormAddressRepository(tdb.DB)

	handlers := router.Handlers{
		Customer: handler.NewCustomerHandler(customerapp.NewCustomerService(
			customerRepo,
			cpf.NewStubValidator([]string{rejectedCPFSuffix}),
		)),
		Address: handler.NewAddressHandler(customerapp.NewAddressService(addressRepo, customerRepo)),
		Product: handler.NewProductHandler(catalog.NewProductService(persistence.NewGormProductRepository(tdb.DB))),
		Service: handler.NewServiceHandler(catalog.NewServiceService(persistence.NewGormServiceRepository(tdb.DB))),
	}

	engine := gin.New()
	engine.Use(middleware.RequestID(), logger.Recovery(zap.NewNop()))
	router.RegisterHealth(engine, handler.NewHealthHandler(tdb.Database, "test"))
	router.NewRouter(engine).Register(handlers.Groups()...).Setup()
	return engine
}
