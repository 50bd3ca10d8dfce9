package cmd

import (
	"log/slog"

	"routebook/internal/adapters/in/cli"
	"routebook/internal/adapters/in/console"
	"routebook/internal/adapters/out/manifestfile"
	"routebook/internal/adapters/out/memory"
	"routebook/internal/adapters/out/routefile"
	"routebook/internal/core/application/usecases/commands"
	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/core/ports"
)

type CompositionRoot struct {
	logger       *slog.Logger
	deliveryRepo ports.DeliveryRepository
}

// NewCompositionRoot wires one session: every handler it creates shares the
// same active-delivery store. Config reaches the command line through
// Config.CLIOptions before the root exists, so only the logger built from it
// is passed here.
func NewCompositionRoot(logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		logger:       logger,
		deliveryRepo: memory.NewDeliveryRepository(),
	}
}

// Services returns the handlers for the command line surface.
func (c CompositionRoot) Services() cli.Services {
	return cli.Services{
		Handlers: console.Handlers{
			ReadManifest:    c.CreateReadManifestQueryHandler(),
			ConfirmDelivery: c.CreateConfirmDeliveryCommandHandler(),
			GetOrderByID:    c.CreateGetOrderByIDQueryHandler(),
			SearchByAddress: c.CreateSearchOrderByAddressQueryHandler(),
			RouteReport:     c.CreateGetRouteReportQueryHandler(),
		},
		ListOrders: c.CreateListOrdersQueryHandler(),
		Routes:     c.CreateRouteSource(),
	}
}

func (c CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.deliveryRepo)
}

func (c CompositionRoot) CreateReadManifestQueryHandler() queries.ReadManifestQueryHandler {
	return queries.NewReadManifestQueryHandler(manifestfile.NewReader(c.logger))
}

func (c CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.deliveryRepo)
}

func (c CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.deliveryRepo)
}

func (c CompositionRoot) CreateSearchOrderByAddressQueryHandler() queries.SearchOrderByAddressQueryHandler {
	return queries.NewSearchOrderByAddressQueryHandler(c.deliveryRepo)
}

func (c CompositionRoot) CreateGetRouteReportQueryHandler() queries.GetRouteReportQueryHandler {
	return queries.NewGetRouteReportQueryHandler(c.deliveryRepo)
}

func (c CompositionRoot) CreateRouteSource() ports.RouteSource {
	return routefile.NewLoader(c.logger)
}
