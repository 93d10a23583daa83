// Command fooddash is the terminal client for the FoodDash delivery
// marketplace: browse restaurants, build a cart, keep a wishlist and place
// orders against the FoodDash API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "fooddash",
		Short: "FoodDash delivery marketplace client",
		Long: `fooddash is the terminal client for the FoodDash delivery marketplace.

Browse restaurants and menus, build a cart, keep a wishlist of favorite
restaurants and place orders. Session, cart and wishlist survive between
invocations in the local state file (or Redis, see FOODDASH_STORAGE).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	rootCmd.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		registerCmd(a),
		whoamiCmd(a),
		profileCmd(a),
		restaurantsCmd(a),
		menuCmd(a),
		cartCmd(a),
		wishlistCmd(a),
		checkoutCmd(a),
		ordersCmd(a),
		ownerCmd(a),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errorMsg("%s", err)
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
