package cli

import (
	"fmt"

	"routebook/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func (a *app) ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders <manifest>",
		Short: "Print every order of a manifest, sorted by order id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, done, err := a.start(cmd)
			if err != nil {
				return err
			}
			defer done()

			if err := loadDelivery(cmd.Context(), &svc, args[0]); err != nil {
				return err
			}

			orders, err := svc.ListOrders.Handle(cmd.Context(), queries.NewListOrdersQuery())
			if err != nil {
				return err
			}

			for _, o := range orders {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), o); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			return nil
		},
	}
}
