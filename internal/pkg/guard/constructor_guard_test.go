package guard_test

import (
	"errors"
	"testing"

	"routebook/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("stop not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("stop not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type stop struct {
		label string
		guard guard.ConstructorGuard
	}

	errStopNotConstructed := errors.New("stop must be created via newStop")

	newStop := func(label string) (stop, error) {
		if label == "" {
			return stop{}, errors.New("label is required")
		}
		return stop{label: label, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		s, err := newStop("Order1")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errStopNotConstructed))
		assert.Equal(t, "Order1", s.label)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		s, err := newStop("")

		require.Error(t, err)
		assert.Equal(t, errStopNotConstructed, s.guard.Validate(errStopNotConstructed))
	})

	t.Run("struct_literal_fails_validation", func(t *testing.T) {
		s := stop{label: "Order1"}

		assert.ErrorIs(t, s.guard.Validate(errStopNotConstructed), errStopNotConstructed)
	})
}
