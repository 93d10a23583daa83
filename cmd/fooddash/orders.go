package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fooddash/client-go/internal/core/domain"
)

func checkoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the current cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRole(domain.RoleCustomer); err != nil {
				return err
			}

			if err := printCart(a); err != nil {
				return err
			}
			fmt.Println()

			orderID, err := a.checkout.PlaceOrder(cmd.Context())
			if err != nil {
				return err
			}
			success("order placed: %s", orderID)
			return nil
		},
	}
}

func ordersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Show the order history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRole(domain.RoleCustomer); err != nil {
				return err
			}

			orders, err := a.client.MyOrders(cmd.Context())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				info("no orders yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRESTAURANT\tSTATUS\tTOTAL\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					o.ID, o.RestaurantName, o.Status, o.Total.StringFixed(2),
					o.CreatedAt.Local().Format(time.RFC822))
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(ordersCancelCmd(a))
	return cmd
}

func ordersCancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a placed order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleCustomer); err != nil {
				return err
			}
			if err := a.client.CancelOrder(cmd.Context(), args[0]); err != nil {
				return err
			}
			success("order cancelled")
			return nil
		},
	}
}
