package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func wishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show the wishlist",
		RunE: func(*cobra.Command, []string) error {
			items := a.wishlist.Items()
			if len(items) == 0 {
				info("wishlist is empty")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCUISINE\tRATING")
			for _, r := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\n", r.ID, r.Name, r.Cuisine, r.Rating)
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(wishlistToggleCmd(a))
	return cmd
}

func wishlistToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <restaurant-id>",
		Short: "Add or remove a restaurant from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurants, err := a.client.Restaurants(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range restaurants {
				if r.ID == args[0] {
					if a.wishlist.Toggle(cmd.Context(), r) {
						success("%s added to wishlist", r.Name)
					} else {
						success("%s removed from wishlist", r.Name)
					}
					return nil
				}
			}
			return fmt.Errorf("restaurant %q not found", args[0])
		},
	}
}
