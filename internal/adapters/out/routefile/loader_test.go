package routefile_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"routebook/internal/adapters/out/routefile"
	"routebook/internal/core/domain/model/route"
	"routebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRoutes = `routes:
  - name: Morning
    orders: [Order2, Order1]
  - orders:
      - Order3
`

func TestDecode(t *testing.T) {
	t.Run("should decode routes in file order", func(t *testing.T) {
		routes, err := routefile.Decode([]byte(sampleRoutes), "routes.yaml")

		require.NoError(t, err)
		require.Len(t, routes, 2)
		assert.Equal(t, "Morning", routes[0].Name())
		assert.Equal(t, []string{"Order2", "Order1"}, routes[0].OrderIDs())
		assert.Equal(t, route.DefaultName, routes[1].Name())
		assert.Equal(t, []string{"Order3"}, routes[1].OrderIDs())
	})

	t.Run("should reject files without routes", func(t *testing.T) {
		for _, input := range []string{"", "routes: []\n"} {
			_, err := routefile.Decode([]byte(input), "routes.yaml")

			require.ErrorIs(t, err, errs.ErrFormatIsInvalid)
			var formatErr *errs.FormatIsInvalidError
			require.ErrorAs(t, err, &formatErr)
			assert.ErrorIs(t, formatErr.Cause, routefile.ErrNoRoutes)
		}
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := routefile.Decode([]byte("routs:\n  - name: A\n"), "routes.yaml")

		require.ErrorIs(t, err, errs.ErrFormatIsInvalid)
	})

	t.Run("should reject unknown keys inside a route", func(t *testing.T) {
		input := "routes:\n  - name: A\n    orders: [Order1]\n  - nmae: Morning\n    orders: [Order2, Order1]\n"

		routes, err := routefile.Decode([]byte(input), "routes.yaml")

		assert.Nil(t, routes)
		require.ErrorIs(t, err, errs.ErrFormatIsInvalid)
		var formatErr *errs.FormatIsInvalidError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 4, formatErr.Line)
		assert.Contains(t, formatErr.Cause.Error(), "nmae")
	})

	t.Run("should report the line of a route without orders", func(t *testing.T) {
		_, err := routefile.Decode([]byte("routes:\n  - name: A\n    orders: [Order1]\n  - name: B\n"), "routes.yaml")

		require.ErrorIs(t, err, errs.ErrFormatIsInvalid)
		var formatErr *errs.FormatIsInvalidError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 4, formatErr.Line)
		assert.ErrorIs(t, formatErr.Cause, route.ErrOrderIDsAreRequired)
	})
}

func TestLoader_Load(t *testing.T) {
	loader := routefile.NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("should load a route file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "routes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleRoutes), 0o600))

		routes, err := loader.Load(t.Context(), path)

		require.NoError(t, err)
		assert.Len(t, routes, 2)
	})

	t.Run("should report a missing file as inaccessible", func(t *testing.T) {
		_, err := loader.Load(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, errs.ErrFileIsInaccessible)
	})
}
