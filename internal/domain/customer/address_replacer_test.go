package customer

import (
	"testing"

	"github.com/clientes/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestReplaceAddresses(t *testing.T) {
	current := []Address{
		{BaseEntity: shared.BaseEntity{ID: 10}, Street: "Old 1", CustomerID: 3},
		{BaseEntity: shared.BaseEntity{ID: 11}, Street: "Old 2", CustomerID: 3},
	}

	t.Run("deletes all current and inserts all incoming", func(t *testing.T) {
		incoming := []Address{
			{BaseEntity: shared.BaseEntity{ID: 10}, Street: "Same id as current", CustomerID: 3},
			{BaseEntity: shared.BaseEntity{ID: 500}, Street: "Foreign", CustomerID: 99},
		}

		changes := ReplaceAddresses(3, current, incoming)

		assert.Equal(t, []uint{10, 11}, changes.DeleteIDs())
		assert.Len(t, changes.ToInsert, 2)
		for _, a := range changes.ToInsert {
			assert.Zero(t, a.ID)
			assert.Equal(t, uint(3), a.CustomerID)
		}
		assert.Equal(t, "Same id as current", changes.ToInsert[0].Street)
	})

	t.Run("empty incoming removes everything", func(t *testing.T) {
		changes := ReplaceAddresses(3, current, []Address{})

		assert.Len(t, changes.ToDelete, 2)
		assert.Empty(t, changes.ToInsert)
	})

	t.Run("nil incoming behaves like empty", func(t *testing.T) {
		changes := ReplaceAddresses(3, current, nil)

		assert.Len(t, changes.ToDelete, 2)
		assert.Empty(t, changes.ToInsert)
	})

	t.Run("does not mutate the caller's incoming slice", func(t *testing.T) {
		incoming := []Address{{BaseEntity: shared.BaseEntity{ID: 8}, CustomerID: 1}}

		ReplaceAddresses(3, nil, incoming)

		assert.Equal(t, uint(8), incoming[0].ID)
		assert.Equal(t, uint(1), incoming[0].CustomerID)
	})
}
