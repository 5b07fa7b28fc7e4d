package guard_test

import (
	"errors"
	"testing"

	"workorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by the command types in this repository.
func TestConstructorGuardUsageExample(t *testing.T) {
	type allocateCommand struct {
		materialLineID string
		quantity       int
		guard          guard.ConstructorGuard
	}

	var errCommandNotConstructed = errors.New("AllocateCommand must be created via its constructor")

	newAllocateCommand := func(materialLineID string, quantity int) (allocateCommand, error) {
		if materialLineID == "" {
			return allocateCommand{}, errors.New("material line id is required")
		}
		if quantity <= 0 {
			return allocateCommand{}, errors.New("quantity must be positive")
		}
		return allocateCommand{
			materialLineID: materialLineID,
			quantity:       quantity,
			guard:          guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd, err := newAllocateCommand("ml-1", 10)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
		assert.Equal(t, 10, cmd.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd allocateCommand

		err := cmd.guard.Validate(errCommandNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errCommandNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newAllocateCommand("", 10)
		require.Error(t, err)

		_, err = newAllocateCommand("ml-1", 0)
		require.Error(t, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
