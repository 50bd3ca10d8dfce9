package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"routebook/cmd"
	"routebook/internal/core/application/usecases/commands"
	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_SharesActiveDelivery(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "delivery.txt")
	require.NoError(t, os.WriteFile(path, []byte("END\nOrder1\nJane\n(555)\n[1, a st, x]\nEND\n"), 0o600))

	root := cmd.NewCompositionRoot(logger.Discard())
	svc := root.Services()

	readQuery, err := queries.NewReadManifestQuery(path)
	require.NoError(t, err)
	pending, err := svc.ReadManifest.Handle(ctx, readQuery)
	require.NoError(t, err)

	confirm, err := commands.NewConfirmDeliveryCommand(pending.Delivery)
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmDelivery.Handle(ctx, confirm))

	orders, err := root.CreateListOrdersQueryHandler().Handle(ctx, queries.NewListOrdersQuery())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Order1", orders[0].ID())
}
