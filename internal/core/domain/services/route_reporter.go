package services

import (
	"errors"
	"fmt"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/core/domain/model/route"
)

// ErrRouteReportIsIncomplete is returned when a route names an order the
// delivery does not contain. It wraps the underlying lookup error, so
// errors.Is(err, errs.ErrObjectNotFound) also holds.
var ErrRouteReportIsIncomplete = errors.New("route references unknown order")

// RouteReport is a route resolved against a delivery: the route name and the
// orders in the sequence the route lists them.
type RouteReport struct {
	Name   string
	Orders []*order.Order
}

// Lines renders the report: the route name followed by one rendered line per
// order, in route order.
func (r RouteReport) Lines() []string {
	lines := make([]string, 0, len(r.Orders)+1)
	lines = append(lines, r.Name)
	for _, o := range r.Orders {
		lines = append(lines, o.String())
	}
	return lines
}

// RouteReporter is a domain service that turns a Route into a RouteReport.
//
// Business rules:
//   - Orders appear in the order the route lists them, never in map order
//   - Every id must exist; the first missing id aborts the whole report
//   - Repeated ids are reported every time they appear
//
// Example usage:
//
//	reporter := NewRouteReporter()
//	r, _ := route.NewRoute("Morning", []string{"Order2", "Order1"})
//
//	report, err := reporter.Report(d, r)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // The route names an order that is not in the delivery
//	}
//	for _, line := range report.Lines() {
//	    fmt.Println(line)
//	}
type RouteReporter struct{}

// NewRouteReporter creates a new RouteReporter instance.
func NewRouteReporter() RouteReporter {
	return RouteReporter{}
}

// Report resolves every id of r in d.
//
// Parameters:
//   - d: The delivery to resolve ids against (must be valid)
//   - r: The route (must be valid)
//
// Returns:
//   - RouteReport: The resolved report
//   - error: Validation errors, or ErrRouteReportIsIncomplete joined with the lookup error
func (RouteReporter) Report(d *delivery.Delivery, r route.Route) (RouteReport, error) {
	if err := errors.Join(d.Validate(), r.Validate()); err != nil {
		return RouteReport{}, err
	}

	ids := r.OrderIDs()
	report := RouteReport{
		Name:   r.Name(),
		Orders: make([]*order.Order, 0, len(ids)),
	}

	for _, id := range ids {
		o, err := d.LookupByID(id)
		if err != nil {
			return RouteReport{}, fmt.Errorf("%w %q: %w", ErrRouteReportIsIncomplete, id, err)
		}
		report.Orders = append(report.Orders, o)
	}

	return report, nil
}
