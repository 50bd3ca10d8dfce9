package services_test

import (
	"testing"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/core/domain/model/kernel"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/core/domain/model/route"
	"routebook/internal/core/domain/services"
	"routebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	addr1, err := kernel.NewAddress(12, "main st", "a1a1a1")
	require.NoError(t, err)
	addr2, err := kernel.NewAddress(7, "oak ave", "b2b2b2")
	require.NoError(t, err)

	o1, err := order.NewOrder("Order1", "Jane Doe", "(555)-123-4567", addr1, order.WithNote("Leave at back door"))
	require.NoError(t, err)
	o2, err := order.NewOrder("Order2", "John Smith", "(555)-987-6543", addr2)
	require.NoError(t, err)

	d, err := delivery.NewDelivery("route.txt", o1, o2)
	require.NoError(t, err)
	return d
}

func TestRouteReporter_Report(t *testing.T) {
	d := buildDelivery(t)
	reporter := services.NewRouteReporter()

	t.Run("should render orders in route order", func(t *testing.T) {
		r, err := route.NewRoute("Route 1", []string{"Order2", "Order1"})
		require.NoError(t, err)

		report, err := reporter.Report(d, r)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Route 1",
			"Order2, John Smith, (555)-987-6543, [7, oak ave, b2b2b2], N/A",
			"Order1, Jane Doe, (555)-123-4567, [12, main st, a1a1a1], Leave at back door",
		}, report.Lines())
	})

	t.Run("should repeat ids listed twice", func(t *testing.T) {
		r, _ := route.NewRoute("Loop", []string{"Order1", "Order2", "Order1"})

		report, err := reporter.Report(d, r)

		require.NoError(t, err)
		require.Len(t, report.Orders, 3)
		assert.Equal(t, "Order1", report.Orders[2].ID())
	})

	t.Run("should fail on an unknown id", func(t *testing.T) {
		r, _ := route.NewRoute("Broken", []string{"Order1", "Order3"})

		report, err := reporter.Report(d, r)

		require.ErrorIs(t, err, services.ErrRouteReportIsIncomplete)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "Order3")
		assert.Empty(t, report.Orders)
	})

	t.Run("should reject unconstructed inputs", func(t *testing.T) {
		_, err := reporter.Report(nil, route.Route{})

		require.ErrorIs(t, err, delivery.ErrDeliveryIsNotConstructed)
		require.ErrorIs(t, err, route.ErrRouteIsNotConstructed)
	})
}

func TestRouteReport_Lines(t *testing.T) {
	report := services.RouteReport{Name: "Empty"}

	assert.Equal(t, []string{"Empty"}, report.Lines())
}
