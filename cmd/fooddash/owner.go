package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fooddash/client-go/internal/core/domain"
)

func ownerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Restaurant owner commands",
	}
	cmd.AddCommand(ownerRestaurantsCmd(a), ownerSetActiveCmd(a))
	return cmd
}

func ownerRestaurantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restaurants",
		Short: "List the restaurants you own",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRole(domain.RoleRestaurantOwner); err != nil {
				return err
			}

			restaurants, err := a.client.OwnerRestaurants(cmd.Context())
			if err != nil {
				return err
			}
			if len(restaurants) == 0 {
				info("no restaurants registered to this account")
				return nil
			}

			active := a.session.ActiveRestaurantID()
			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "  \tID\tNAME\tCUISINE\tOPEN")
			for _, r := range restaurants {
				marker := " "
				if r.ID == active {
					marker = "*"
				}
				open := "yes"
				if !r.IsOpen {
					open = "no"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, r.ID, r.Name, r.Cuisine, open)
			}
			return w.Flush()
		},
	}
}

func ownerSetActiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-active <restaurant-id>",
		Short: "Select the restaurant you are managing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleRestaurantOwner); err != nil {
				return err
			}
			if err := a.session.SetActiveRestaurant(cmd.Context(), args[0]); err != nil {
				return err
			}
			success("active restaurant set to %s", args[0])
			return nil
		},
	}
}
