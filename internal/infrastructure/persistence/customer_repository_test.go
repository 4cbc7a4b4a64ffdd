package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/domain/shared"
	"github.com/clientes/backend/internal/infrastructure/persistence/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGormCustomerRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)

	t.Run("assigns identities to customer and addresses", func(t *testing.T) {
		c := createTestCustomer(t, repo, "52998224725", "maria@example.com",
			testAddress("Rua A"), testAddress("Rua B"))

		assert.NotZero(t, c.ID)
		require.Len(t, c.Addresses, 2)
		for _, a := range c.Addresses {
			assert.NotZero(t, a.ID)
			assert.Equal(t, c.ID, a.CustomerID)
		}
		assert.NotEqual(t, c.Addresses[0].ID, c.Addresses[1].ID)
	})

	t.Run("duplicate CPF maps to conflict", func(t *testing.T) {
		c := customer.NewCustomer(testProfile("52998224725", "other@example.com"), nil, testNow)
		err := repo.Create(context.Background(), c)

		assert.ErrorIs(t, err, customer.ErrDuplicateCustomer)
		assert.ErrorIs(t, err, shared.ErrConflict)
		assert.Zero(t, c.ID)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		c := customer.NewCustomer(testProfile("12345678909", "maria@example.com"), nil, testNow)
		err := repo.Create(context.Background(), c)

		assert.ErrorIs(t, err, customer.ErrDuplicateCustomer)
	})
}

func TestGormCustomerRepository_ExistsConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	existing := createTestCustomer(t, repo, "52998224725", "maria@example.com")

	tests := []struct {
		name      string
		cpf       string
		email     string
		excluding *uint
		want      bool
	}{
		{"same cpf", "52998224725", "new@example.com", nil, true},
		{"same email", "12345678909", "maria@example.com", nil, true},
		{"both free", "12345678909", "new@example.com", nil, false},
		{"own record excluded", "52998224725", "maria@example.com", &existing.ID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsConflict(ctx, tt.cpf, tt.email, tt.excluding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("inactive customers still hold their CPF", func(t *testing.T) {
		require.True(t, existing.Deactivate(testNow))
		require.NoError(t, repo.SaveWithLock(ctx, existing))

		got, err := repo.ExistsConflict(ctx, "52998224725", "new@example.com", nil)
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	t.Run("loads addresses", func(t *testing.T) {
		c := createTestCustomer(t, repo, "52998224725", "maria@example.com", testAddress("Rua A"))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria", found.Name)
		assert.Equal(t, 1, found.Version)
		assert.True(t, found.Active)
		assert.Nil(t, found.LastUpdatedAt)
		require.Len(t, found.Addresses, 1)
		assert.Equal(t, "Rua A", found.Addresses[0].Street)
	})

	t.Run("customer without addresses gets an empty slice", func(t *testing.T) {
		c := createTestCustomer(t, repo, "12345678909", "joao@example.com")

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.NotNil(t, found.Addresses)
		assert.Empty(t, found.Addresses)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCustomerRepository_FindActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	active := createTestCustomer(t, repo, "52998224725", "maria@example.com")
	inactive := createTestCustomer(t, repo, "12345678909", "joao@example.com")
	require.True(t, inactive.Deactivate(testNow))
	require.NoError(t, repo.SaveWithLock(ctx, inactive))

	customers, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, active.ID, customers[0].ID)
}

func TestGormCustomerRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the address set atomically", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		c := createTestCustomer(t, repo, "52998224725", "maria@example.com",
			testAddress("Rua A"), testAddress("Rua B"))
		oldIDs := []uint{c.Addresses[0].ID, c.Addresses[1].ID}

		loaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		p := loaded.Profile
		p.Name = "Mariana"
		changes, err := loaded.Overwrite(p, []customer.Address{testAddress("Rua C")}, testNow)
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, loaded, changes))
		assert.Equal(t, 2, loaded.Version)
		require.Len(t, loaded.Addresses, 1)
		assert.NotZero(t, loaded.Addresses[0].ID)

		reloaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mariana", reloaded.Name)
		assert.Equal(t, 2, reloaded.Version)
		require.NotNil(t, reloaded.LastUpdatedAt)
		require.Len(t, reloaded.Addresses, 1)
		assert.Equal(t, "Rua C", reloaded.Addresses[0].Street)
		assert.NotContains(t, oldIDs, reloaded.Addresses[0].ID)

		var count int64
		require.NoError(t, db.Model(&models.AddressModel{}).Where("id IN ?", oldIDs).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("empty incoming set removes every address", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		c := createTestCustomer(t, repo, "52998224725", "maria@example.com", testAddress("Rua A"))

		loaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		changes, err := loaded.Overwrite(loaded.Profile, nil, testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, loaded, changes))

		reloaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.Addresses)
	})

	t.Run("address added after loading is replaced too", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		c := createTestCustomer(t, repo, "52998224725", "maria@example.com", testAddress("Rua A"))

		loaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)

		late := testAddress("Rua Tardia")
		late.CustomerID = c.ID
		require.NoError(t, NewGormAddressRepository(db).Create(ctx, &late))

		changes, err := loaded.Overwrite(loaded.Profile, nil, testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, loaded, changes))

		var count int64
		require.NoError(t, db.Model(&models.AddressModel{}).Where("customer_id = ?", c.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("stale version rolls back everything", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		c := createTestCustomer(t, repo, "52998224725", "maria@example.com", testAddress("Rua A"))

		first, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)

		changes, err := first.Overwrite(first.Profile, []customer.Address{testAddress("Rua B")}, testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, first, changes))

		p := second.Profile
		p.Name = "Lost"
		changes, err = second.Overwrite(p, []customer.Address{testAddress("Rua X")}, testNow)
		require.NoError(t, err)
		err = repo.Update(ctx, second, changes)
		assert.ErrorIs(t, err, customer.ErrCustomerModified)

		reloaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria", reloaded.Name)
		require.Len(t, reloaded.Addresses, 1)
		assert.Equal(t, "Rua B", reloaded.Addresses[0].Street)
	})

	t.Run("taking another customer's email maps to conflict", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCustomerRepository(db)
		createTestCustomer(t, repo, "52998224725", "maria@example.com")
		other := createTestCustomer(t, repo, "12345678909", "joao@example.com")

		loaded, err := repo.FindByID(ctx, other.ID)
		require.NoError(t, err)
		p := loaded.Profile
		p.Email = "maria@example.com"
		changes, err := loaded.Overwrite(p, nil, testNow)
		require.NoError(t, err)

		err = repo.Update(ctx, loaded, changes)
		assert.ErrorIs(t, err, customer.ErrDuplicateCustomer)
	})
}

func TestGormCustomerRepository_SaveWithLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	c := createTestCustomer(t, repo, "52998224725", "maria@example.com", testAddress("Rua A"))

	require.True(t, c.Deactivate(testNow))
	require.NoError(t, repo.SaveWithLock(ctx, c))
	assert.Equal(t, 2, c.Version)

	reloaded, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
	require.NotNil(t, reloaded.LastUpdatedAt)
	assert.True(t, reloaded.LastUpdatedAt.Equal(testNow))
	assert.Len(t, reloaded.Addresses, 1, "soft delete keeps addresses")

	stale := *c
	stale.Version = 1
	assert.ErrorIs(t, repo.SaveWithLock(ctx, &stale), customer.ErrCustomerModified)
}

// newMockDB creates a GORM handle over a mocked PostgreSQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gormDB, mock
}

func TestGormCustomerRepository_Postgres(t *testing.T) {
	t.Run("ExistsConflict issues a single count query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormCustomerRepository(db)
		id := uint(7)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE \(+cpf = \$1 OR email = \$2\)+ AND id <> \$3`).
			WithArgs("52998224725", "maria@example.com", id).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		got, err := repo.ExistsConflict(context.Background(), "52998224725", "maria@example.com", &id)
		require.NoError(t, err)
		assert.True(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique_violation from the driver maps to conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormCustomerRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "customers"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_customers_cpf"})
		mock.ExpectRollback()

		c := customer.NewCustomer(testProfile("52998224725", "maria@example.com"), nil, testNow)
		err := repo.Create(context.Background(), c)
		assert.ErrorIs(t, err, customer.ErrDuplicateCustomer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other driver errors pass through", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormCustomerRepository(db)
		boom := errors.New("connection reset")

		mock.ExpectQuery(`SELECT \* FROM "customers"`).WillReturnError(boom)

		_, err := repo.FindByID(context.Background(), 1)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, shared.ErrNotFound)
	})
}
