// Package queries contains read operations for retrieving session state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never change the active delivery.
package queries

import (
	"errors"
	"strings"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/pkg/errs"
	"routebook/internal/pkg/guard"
)

var (
	ErrReadManifestQueryIsNotConstructed = errors.New(
		"ReadManifestQuery must be created via NewReadManifestQuery constructor",
	)
	ErrManifestPathIsRequired = errs.NewValueIsRequiredError("manifest path")
)

// ReadManifestQuery parses a manifest without adopting it. The result is a
// pending delivery the user still has to confirm.
//
// Example:
//
//	query, err := NewReadManifestQuery("deliveries/monday.txt")
//	if err != nil {
//	    return err
//	}
//
//	pending, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, errs.ErrFileIsInaccessible):
//	    // ask for another file name
//	case errors.Is(err, errs.ErrFormatIsInvalid):
//	    // the manifest is broken
//	}
//	for _, o := range pending.Orders {
//	    fmt.Println(o)
//	}
type ReadManifestQuery struct {
	path string

	guard guard.ConstructorGuard
}

// NewReadManifestQuery creates a query for the manifest at path.
func NewReadManifestQuery(path string) (ReadManifestQuery, error) {
	if strings.TrimSpace(path) == "" {
		return ReadManifestQuery{}, ErrManifestPathIsRequired
	}

	return ReadManifestQuery{
		path:  path,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrReadManifestQueryIsNotConstructed if validation fails.
func (q ReadManifestQuery) Validate() error {
	return q.guard.Validate(ErrReadManifestQueryIsNotConstructed)
}

// Path returns the manifest location.
func (q ReadManifestQuery) Path() string {
	return q.path
}

// ReadManifestQueryResponse is a parsed, not yet confirmed, manifest.
type ReadManifestQueryResponse struct {
	Delivery *delivery.Delivery
	// Orders lists the delivery sorted by order id, the way it is shown for
	// confirmation.
	Orders []*order.Order
}
