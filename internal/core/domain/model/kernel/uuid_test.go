package kernel_test

import (
	"testing"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("generates_valid_unique_uuids", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses_canonical_format", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)

		_, err = kernel.UUIDFromString("")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trips_through_bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("rejects_nil_uuid_bytes", func(t *testing.T) {
		var zero [16]byte
		_, err := kernel.UUIDFromBytes(zero[:])
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed_uuid_is_valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
		assert.True(t, id.IsZero())
	})
}

func TestUUID_String(t *testing.T) {
	var zero kernel.UUID
	assert.Equal(t, uuid.Nil.String(), zero.String())
}

func TestRandomIDGenerator(t *testing.T) {
	gen := kernel.NewRandomIDGenerator()

	id1 := gen.NewID()
	id2 := gen.NewID()

	require.NoError(t, id1.Validate())
	require.NoError(t, id2.Validate())
	assert.False(t, id1.IsEqual(id2))
}

func TestSequentialIDGenerator(t *testing.T) {
	t.Run("sequence_is_deterministic", func(t *testing.T) {
		gen1 := kernel.NewSequentialIDGenerator()
		gen2 := kernel.NewSequentialIDGenerator()

		for range 5 {
			assert.True(t, gen1.NewID().IsEqual(gen2.NewID()))
		}
	})

	t.Run("ids_are_valid_and_unique", func(t *testing.T) {
		gen := kernel.NewSequentialIDGenerator()
		seen := make(map[string]bool)

		for range 100 {
			id := gen.NewID()
			require.NoError(t, id.Validate())
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}
