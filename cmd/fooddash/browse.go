package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func restaurantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			restaurants, err := a.client.Restaurants(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "  \tID\tNAME\tCUISINE\tRATING\tDELIVERY\tOPEN")
			for _, r := range restaurants {
				heart := " "
				if a.wishlist.IsWishlisted(r.ID) {
					heart = "♥"
				}
				open := "yes"
				if !r.IsOpen {
					open = "no"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t%s\t%s\n",
					heart, r.ID, r.Name, r.Cuisine, r.Rating, r.DeliveryTime, open)
			}
			return w.Flush()
		},
	}
}

func menuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu <restaurant-id>",
		Short: "Show a restaurant's menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menu, err := a.client.Menu(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tIN CART")
			for _, m := range menu {
				inCart := ""
				if qty := a.cart.ItemQty(m.ID); qty > 0 {
					inCart = fmt.Sprintf("×%d", qty)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Category, m.Price.StringFixed(2), inCart)
			}
			return w.Flush()
		},
	}
}
