package cli

import (
	"fmt"

	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/pkg/errs"

	"github.com/spf13/cobra"
)

func (a *app) searchCmd() *cobra.Command {
	var (
		orderID string
		address string
	)

	cmd := &cobra.Command{
		Use:   "search <manifest>",
		Short: "Find one order by id or by address",
		Example: `  routebook search deliveries.txt --id Order1
  routebook search deliveries.txt --address "7, Oak Ave, B2B2B2"`,
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

			var o *order.Order
			if cmd.Flags().Changed("id") {
				o, err = searchByID(cmd, &svc, orderID)
			} else {
				o, err = searchByAddress(cmd, &svc, address)
			}
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), o); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&orderID, "id", "", "order id, matched exactly")
	cmd.Flags().StringVar(&address, "address", "", `address as "number, street, postal code"`)
	cmd.MarkFlagsMutuallyExclusive("id", "address")
	cmd.MarkFlagsOneRequired("id", "address")
	return cmd
}

func searchByID(cmd *cobra.Command, svc *Services, orderID string) (*order.Order, error) {
	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return nil, err
	}
	return svc.GetOrderByID.Handle(cmd.Context(), query)
}

func searchByAddress(cmd *cobra.Command, svc *Services, address string) (*order.Order, error) {
	query, err := queries.NewSearchOrderByAddressQuery(address)
	if err != nil {
		return nil, err
	}

	resp, err := svc.SearchByAddress.Handle(cmd.Context(), query)
	if err != nil {
		return nil, err
	}
	if !resp.Found {
		return nil, errs.NewObjectNotFoundError("order", query.Address().String())
	}
	return resp.Order, nil
}
