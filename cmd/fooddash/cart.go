package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fooddash/client-go/internal/core/domain"
)

func cartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		RunE: func(*cobra.Command, []string) error {
			return printCart(a)
		},
	}
	cmd.AddCommand(
		cartAddCmd(a),
		cartIncCmd(a),
		cartDecCmd(a),
		cartRemoveCmd(a),
		cartClearCmd(a),
	)
	return cmd
}

func printCart(a *app) error {
	items := a.cart.Items()
	if len(items) == 0 {
		info("cart is empty")
		return nil
	}

	fmt.Printf("Ordering from %s\n\n", a.cart.RestaurantName())
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tITEM\tQTY\tPRICE\tLINE")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			it.ID, it.Name, it.Quantity, it.Price.StringFixed(2), it.LineTotal().StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	t := a.cart.Totals()
	fmt.Println()
	info("subtotal:     %s", t.Subtotal.StringFixed(2))
	info("delivery fee: %s", t.DeliveryFee.StringFixed(2))
	info("taxes:        %s", t.Taxes.StringFixed(2))
	info("total:        %s  (%d items)", t.Total.StringFixed(2), t.TotalItems)
	return nil
}

func cartAddCmd(a *app) *cobra.Command {
	var restaurantID string

	cmd := &cobra.Command{
		Use:   "add <menu-item-id>",
		Short: "Add one unit of a menu item to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menu, err := a.client.Menu(cmd.Context(), restaurantID)
			if err != nil {
				return err
			}

			var restaurantName string
			restaurants, err := a.client.Restaurants(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range restaurants {
				if r.ID == restaurantID {
					restaurantName = r.Name
				}
			}
			if restaurantName == "" {
				return fmt.Errorf("restaurant %q not found", restaurantID)
			}

			for _, m := range menu {
				if m.ID != args[0] {
					continue
				}
				item := domain.CartItem{ID: m.ID, Name: m.Name, Price: m.Price, Quantity: 1}
				if a.cart.AddItem(cmd.Context(), item, restaurantID, restaurantName) {
					return resolveConflict(a, cmd)
				}
				success("%s added (×%d)", m.Name, a.cart.ItemQty(m.ID))
				return nil
			}
			return fmt.Errorf("menu item %q not found at %s", args[0], restaurantName)
		},
	}

	cmd.Flags().StringVarP(&restaurantID, "restaurant", "r", "", "Restaurant the item belongs to")
	_ = cmd.MarkFlagRequired("restaurant")

	return cmd
}

// resolveConflict prompts for the cross-restaurant decision: starting a new
// cart drops the current one, declining keeps it.
func resolveConflict(a *app, cmd *cobra.Command) error {
	pending, ok := a.cart.PendingConflict()
	if !ok {
		return nil
	}

	warn("your cart contains items from %s", a.cart.RestaurantName())
	fmt.Printf("Start a new cart from %s with %s? [y/N] ", pending.RestaurantName, pending.Item.Name)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	confirm := strings.EqualFold(strings.TrimSpace(answer), "y")
	a.cart.ResolveConflict(cmd.Context(), confirm)

	if confirm {
		success("started a new cart from %s", pending.RestaurantName)
	} else {
		info("kept the existing cart")
	}
	return nil
}

func cartIncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inc <menu-item-id>",
		Short: "Increase an item's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cart.IncreaseQty(cmd.Context(), args[0])
			return printCart(a)
		},
	}
}

func cartDecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dec <menu-item-id>",
		Short: "Decrease an item's quantity, removing it at zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cart.DecreaseQty(cmd.Context(), args[0])
			return printCart(a)
		},
	}
}

func cartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <menu-item-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cart.RemoveItem(cmd.Context(), args[0])
			return printCart(a)
		},
	}
}

func cartClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Run: func(cmd *cobra.Command, _ []string) {
			a.cart.Clear(cmd.Context())
			success("cart cleared")
		},
	}
}
