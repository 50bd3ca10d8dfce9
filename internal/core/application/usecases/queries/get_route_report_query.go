package queries

import (
	"errors"

	"routebook/internal/core/domain/model/route"
	"routebook/internal/pkg/guard"
)

var (
	ErrGetRouteReportQueryIsNotConstructed = errors.New(
		"GetRouteReportQuery must be created via NewGetRouteReportQuery constructor",
	)
)

// GetRouteReportQuery resolves a route against the active delivery.
//
// Example:
//
//	query, err := ParseGetRouteReportQuery("Morning", "Order2, Order1")
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err // an id is unknown
//	}
//	for _, line := range report.Lines() {
//	    fmt.Println(line)
//	}
type GetRouteReportQuery struct {
	route route.Route

	guard guard.ConstructorGuard
}

// NewGetRouteReportQuery creates the query for a constructed route.
func NewGetRouteReportQuery(r route.Route) (GetRouteReportQuery, error) {
	if err := r.Validate(); err != nil {
		return GetRouteReportQuery{}, err
	}

	return GetRouteReportQuery{
		route: r,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseGetRouteReportQuery builds the query from console input: a route name
// (blank gives route.DefaultName) and ids in the form "Order1, Order2".
func ParseGetRouteReportQuery(name, rawOrderIDs string) (GetRouteReportQuery, error) {
	ids, err := route.ParseOrderIDs(rawOrderIDs)
	if err != nil {
		return GetRouteReportQuery{}, err
	}

	r, err := route.NewRoute(name, ids)
	if err != nil {
		return GetRouteReportQuery{}, err
	}

	return NewGetRouteReportQuery(r)
}

// Validate ensures the query was created through the constructor.
func (q GetRouteReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteReportQueryIsNotConstructed)
}

// Route returns the route to resolve.
func (q GetRouteReportQuery) Route() route.Route {
	return q.route
}
