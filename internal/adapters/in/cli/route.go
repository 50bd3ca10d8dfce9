package cli

import (
	"fmt"

	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/core/domain/model/route"
	"routebook/internal/pkg/errs"

	"github.com/spf13/cobra"
)

func (a *app) routeCmd() *cobra.Command {
	var (
		name     string
		orderIDs string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "route <manifest>",
		Short: "Print the orders of a route in route order",
		Example: `  routebook route deliveries.txt --name Morning --orders "Order2, Order1"
  routebook route deliveries.txt --file routes.yaml
  routebook route deliveries.txt --file routes.yaml --name Morning`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, done, err := a.start(cmd)
			if err != nil {
				return err
			}
			defer done()

			if err := loadDelivery(cmd.Context(), &svc, args[0]); err != nil {
				return err
			}

			var routes []route.Route
			if file != "" {
				routes, err = svc.Routes.Load(cmd.Context(), file)
				if err == nil && cmd.Flags().Changed("name") {
					routes, err = selectRoute(routes, name)
				}
			} else {
				var r route.Route
				r, err = parseRoute(name, orderIDs)
				routes = []route.Route{r}
			}
			if err != nil {
				return err
			}

			for i, r := range routes {
				if i > 0 {
					if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
						return fmt.Errorf("write output: %w", err)
					}
				}
				if err := printRoute(cmd, &svc, r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "route name; with --file, print only this route")
	cmd.Flags().StringVar(&orderIDs, "orders", "", `order ids as "Order1, Order2"`)
	cmd.Flags().StringVar(&file, "file", "", "YAML file of routes")
	cmd.MarkFlagsMutuallyExclusive("orders", "file")
	cmd.MarkFlagsOneRequired("orders", "file")
	return cmd
}

func parseRoute(name, rawOrderIDs string) (route.Route, error) {
	ids, err := route.ParseOrderIDs(rawOrderIDs)
	if err != nil {
		return route.Route{}, err
	}
	return route.NewRoute(name, ids)
}

func selectRoute(routes []route.Route, name string) ([]route.Route, error) {
	for _, r := range routes {
		if r.Name() == name {
			return []route.Route{r}, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("route", name)
}

func printRoute(cmd *cobra.Command, svc *Services, r route.Route) error {
	query, err := queries.NewGetRouteReportQuery(r)
	if err != nil {
		return err
	}

	report, err := svc.RouteReport.Handle(cmd.Context(), query)
	if err != nil {
		return err
	}

	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
