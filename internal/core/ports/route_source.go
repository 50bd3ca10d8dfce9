package ports

import (
	"context"

	"routebook/internal/core/domain/model/route"
)

// RouteSource loads predefined routes, e.g. from a route file.
type RouteSource interface {
	// Load returns the routes stored at path in file order.
	Load(ctx context.Context, path string) ([]route.Route, error)
}
