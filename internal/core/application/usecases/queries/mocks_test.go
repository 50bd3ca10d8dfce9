package queries_test

import (
	"context"
	"testing"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/core/domain/model/kernel"
	"routebook/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Replace(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Active(ctx context.Context) (*delivery.Delivery, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

type MockManifestReader struct{ mock.Mock }

func (m *MockManifestReader) Read(ctx context.Context, path string) (*delivery.Delivery, error) {
	args := m.Called(ctx, path)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func newOrder(t *testing.T, id string, number int, street, postalCode string, opts ...order.Option) *order.Order {
	t.Helper()

	addr, err := kernel.NewAddress(number, street, postalCode)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "Customer "+id, "(555)-000-0000", addr, opts...)
	require.NoError(t, err)
	return o
}

func sampleDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery("sample.txt",
		newOrder(t, "Order2", 7, "oak ave", "b2b2b2"),
		newOrder(t, "Order1", 12, "main st", "a1a1a1", order.WithNote("Leave at back door")),
	)
	require.NoError(t, err)
	return d
}
