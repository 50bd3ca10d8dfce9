package queries_test

import (
	"testing"

	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByIDQuery(t *testing.T) {
	query, err := queries.NewGetOrderByIDQuery(" Order1 ")
	require.NoError(t, err)
	assert.Equal(t, "Order1", query.OrderID())

	_, err = queries.NewGetOrderByIDQuery("")
	require.ErrorIs(t, err, order.ErrOrderIDIsRequired)

	assert.ErrorIs(t, queries.GetOrderByIDQuery{}.Validate(), queries.ErrGetOrderByIDQueryIsNotConstructed)
}

func TestGetOrderByIDQueryHandler_Handle(t *testing.T) {
	t.Run("should return the matching order", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockDeliveryRepository)
		repo.On("Active", ctx).Return(sampleDelivery(t), nil).Once()
		query, _ := queries.NewGetOrderByIDQuery("Order1")

		o, err := queries.NewGetOrderByIDQueryHandler(repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "Order1", o.ID())
		assert.Equal(t, "Leave at back door", o.Note())
		repo.AssertExpectations(t)
	})

	t.Run("should signal not found for an unknown id", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockDeliveryRepository)
		repo.On("Active", ctx).Return(sampleDelivery(t), nil).Once()
		query, _ := queries.NewGetOrderByIDQuery("Order9")

		o, err := queries.NewGetOrderByIDQueryHandler(repo).Handle(ctx, query)

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "Order9")
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		repo := new(MockDeliveryRepository)

		_, err := queries.NewGetOrderByIDQueryHandler(repo).Handle(t.Context(), queries.GetOrderByIDQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
		repo.AssertNotCalled(t, "Active", mock.Anything)
	})
}
