package route_test

import (
	"testing"

	"routebook/internal/core/domain/model/route"
	"routebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("should keep name and id order", func(t *testing.T) {
		r, err := route.NewRoute("Morning", []string{"Order2", "Order1"})

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "Morning", r.Name())
		assert.Equal(t, []string{"Order2", "Order1"}, r.OrderIDs())
	})

	t.Run("should default a blank name", func(t *testing.T) {
		r, err := route.NewRoute("   ", []string{"Order1"})

		require.NoError(t, err)
		assert.Equal(t, route.DefaultName, r.Name())
	})

	t.Run("should require at least one id", func(t *testing.T) {
		_, err := route.NewRoute("Morning", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blank ids", func(t *testing.T) {
		_, err := route.NewRoute("Morning", []string{"Order1", " "})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "position 2")
	})

	t.Run("should copy the ids", func(t *testing.T) {
		ids := []string{"Order1"}
		r, _ := route.NewRoute("Morning", ids)
		ids[0] = "Changed"

		got := r.OrderIDs()
		got[0] = "Changed again"

		assert.Equal(t, []string{"Order1"}, r.OrderIDs())
	})
}

func TestParseOrderIDs(t *testing.T) {
	t.Run("should split on comma and space", func(t *testing.T) {
		ids, err := route.ParseOrderIDs("Order2, Order1, Order3\n")

		require.NoError(t, err)
		assert.Equal(t, []string{"Order2", "Order1", "Order3"}, ids)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := route.ParseOrderIDs("  ")

		assert.Equal(t, route.ErrOrderIDsAreRequired, err)
	})

	t.Run("should reject blank entries", func(t *testing.T) {
		_, err := route.ParseOrderIDs("Order1, , Order2")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRoute_Validate(t *testing.T) {
	var r route.Route

	assert.Equal(t, route.ErrRouteIsNotConstructed, r.Validate())
}
