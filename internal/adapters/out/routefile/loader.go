// Package routefile loads predefined routes from YAML:
//
//	routes:
//	  - name: Morning
//	    orders: [Order2, Order1]
//	  - name: Afternoon
//	    orders:
//	      - Order3
package routefile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"routebook/internal/core/domain/model/route"
	"routebook/internal/core/ports"
	"routebook/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var ErrNoRoutes = errs.NewValueIsRequiredError("routes")

type fileDTO struct {
	Routes []yaml.Node `yaml:"routes"`
}

type routeDTO struct {
	Name   string   `yaml:"name"`
	Orders []string `yaml:"orders"`
}

// Loader reads route files from the local filesystem.
type Loader struct {
	logger *slog.Logger
}

var _ ports.RouteSource = (*Loader)(nil)

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logger.With("component", "route_loader"),
	}
}

// Load reads every route in path, in file order. Unknown keys, an empty route
// list and routes without orders are format errors.
func (l *Loader) Load(ctx context.Context, path string) ([]route.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewFileIsInaccessibleErrorWithCause(path, err)
	}

	routes, err := Decode(b, path)
	if err != nil {
		l.logger.WarnContext(ctx, "Route file rejected", "path", path, "error", err)
		return nil, err
	}

	l.logger.DebugContext(ctx, "Route file loaded", "path", path, "routes", len(routes))
	return routes, nil
}

// Decode parses YAML route data. source names the data in errors.
func Decode(data []byte, source string) ([]route.Route, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file fileDTO
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.NewFormatIsInvalidErrorWithCause(source, 0, err)
	}
	if len(file.Routes) == 0 {
		return nil, errs.NewFormatIsInvalidErrorWithCause(source, 0, ErrNoRoutes)
	}

	routes := make([]route.Route, 0, len(file.Routes))
	for i := range file.Routes {
		node := &file.Routes[i]

		dto, err := decodeRoute(node)
		if err != nil {
			return nil, errs.NewFormatIsInvalidErrorWithCause(source, node.Line,
				fmt.Errorf("route %d: %w", i+1, err))
		}

		r, err := route.NewRoute(dto.Name, dto.Orders)
		if err != nil {
			return nil, errs.NewFormatIsInvalidErrorWithCause(source, node.Line,
				fmt.Errorf("route %d: %w", i+1, err))
		}
		routes = append(routes, r)
	}

	return routes, nil
}

// decodeRoute re-encodes node and decodes it with KnownFields, since
// yaml.Node.Decode does not inherit the outer decoder's settings.
func decodeRoute(node *yaml.Node) (routeDTO, error) {
	b, err := yaml.Marshal(node)
	if err != nil {
		return routeDTO{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var dto routeDTO
	if err := dec.Decode(&dto); err != nil {
		return routeDTO{}, err
	}
	return dto, nil
}
