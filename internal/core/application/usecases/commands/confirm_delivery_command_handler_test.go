package commands_test

import (
	"context"
	"errors"
	"testing"

	"routebook/internal/core/application/usecases/commands"
	"routebook/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
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

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d, err := delivery.NewDelivery("sample.txt")
	require.NoError(t, err)
	cmd, _ := commands.NewConfirmDeliveryCommand(d)

	repo := new(MockDeliveryRepository)
	repo.On("Replace", ctx, d).Return(nil).Once()

	h := commands.NewConfirmDeliveryCommandHandler(repo)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	d, err := delivery.NewDelivery("sample.txt")
	require.NoError(t, err)
	cmd, _ := commands.NewConfirmDeliveryCommand(d)
	replaceErr := errors.New("store unavailable")

	repo := new(MockDeliveryRepository)
	repo.On("Replace", ctx, d).Return(replaceErr).Once()

	h := commands.NewConfirmDeliveryCommandHandler(repo)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, replaceErr)
	repo.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_InvalidCommand(t *testing.T) {
	repo := new(MockDeliveryRepository)

	h := commands.NewConfirmDeliveryCommandHandler(repo)
	err := h.Handle(t.Context(), commands.ConfirmDeliveryCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrConfirmDeliveryCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}
