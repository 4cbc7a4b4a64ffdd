package persistence

import (
	"context"
	"testing"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAddressRepository(t *testing.T) {
	db := setupTestDB(t)
	customers := NewGormCustomerRepository(db)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	maria := createTestCustomer(t, customers, "52998224725", "maria@example.com", testAddress("Rua A"))
	joao := createTestCustomer(t, customers, "12345678909", "joao@example.com")

	t.Run("Create assigns an ID", func(t *testing.T) {
		a := testAddress("Rua B")
		a.CustomerID = joao.ID
		complement := "Apto 12"
		a.Complement = &complement

		require.NoError(t, repo.Create(ctx, &a))
		assert.NotZero(t, a.ID)

		found, err := repo.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, joao.ID, found.CustomerID)
		require.NotNil(t, found.Complement)
		assert.Equal(t, "Apto 12", *found.Complement)
	})

	t.Run("Create for a missing owner fails on the foreign key", func(t *testing.T) {
		a := testAddress("Rua Z")
		a.CustomerID = 9999
		assert.Error(t, repo.Create(ctx, &a))
	})

	t.Run("FindAll and FindByCustomer", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		owned, err := repo.FindByCustomer(ctx, maria.ID)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, "Rua A", owned[0].Street)
	})

	t.Run("Save overwrites fields but never the owner", func(t *testing.T) {
		a := maria.Addresses[0]
		a.Street = "Rua Nova"
		a.CustomerID = joao.ID

		require.NoError(t, repo.Save(ctx, &a))

		found, err := repo.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rua Nova", found.Street)
		assert.Equal(t, maria.ID, found.CustomerID)
	})

	t.Run("Save of a missing address", func(t *testing.T) {
		a := testAddress("Rua A")
		a.ID = 9999
		assert.ErrorIs(t, repo.Save(ctx, &a), customer.ErrAddressNotFound)
	})

	t.Run("Delete is permanent", func(t *testing.T) {
		id := maria.Addresses[0].ID
		require.NoError(t, repo.Delete(ctx, id))

		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, customer.ErrAddressNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, id), customer.ErrAddressNotFound)
	})
}
