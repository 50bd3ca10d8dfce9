package queries

import (
	"context"
	"fmt"

	"routebook/internal/core/domain/services"
	"routebook/internal/core/ports"
)

// GetRouteReportQueryHandler builds route reports with services.RouteReporter.
type GetRouteReportQueryHandler struct {
	repo     ports.DeliveryRepository
	reporter services.RouteReporter
}

func NewGetRouteReportQueryHandler(repo ports.DeliveryRepository) GetRouteReportQueryHandler {
	return GetRouteReportQueryHandler{
		repo:     repo,
		reporter: services.NewRouteReporter(),
	}
}

// Handle resolves every id of the route, in route order. The first unknown id
// fails the query with an error matching errs.ErrObjectNotFound.
func (h GetRouteReportQueryHandler) Handle(
	ctx context.Context,
	query GetRouteReportQuery,
) (services.RouteReport, error) {
	if err := query.Validate(); err != nil {
		return services.RouteReport{}, err
	}

	d, err := h.repo.Active(ctx)
	if err != nil {
		return services.RouteReport{}, fmt.Errorf("route report: %w", err)
	}

	report, err := h.reporter.Report(d, query.Route())
	if err != nil {
		return services.RouteReport{}, fmt.Errorf("route report: %w", err)
	}

	return report, nil
}
