package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

func loginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the FoodDash API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.session.Login(cmd.Context(), ports.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}

			success("logged in as %s (%s)", data.FullName, data.Role)
			if data.Role == domain.RoleRestaurantOwner && len(data.Restaurants) > 0 {
				info("active restaurant: %s", data.Restaurants[0].Name)
			}
			info("home: %s", data.Role.Home())
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session and cart",
		Run: func(cmd *cobra.Command, _ []string) {
			a.session.Logout(cmd.Context())
			success("logged out")
		},
	}
}

func registerCmd(a *app) *cobra.Command {
	var input ports.RegistrationInput
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new FoodDash account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Role = domain.Role(role)
			msg, err := a.session.Register(cmd.Context(), input)
			if err != nil {
				return err
			}
			success("%s", msg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input.FullName, "name", "n", "", "Full name")
	cmd.Flags().StringVarP(&input.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "Account password (min 6 characters)")
	cmd.Flags().StringVarP(&role, "role", "r", string(domain.RoleCustomer),
		"Account role: CUSTOMER, ADMIN, RESTAURANT_OWNER or DELIVERY_PARTNER")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Run: func(*cobra.Command, []string) {
			if a.session.Status() != domain.StatusAuthenticated {
				info("not logged in")
				return
			}

			info("name:  %s", a.session.Name())
			info("role:  %s", a.session.Role())
			if exp, ok := a.session.TokenExpiry(); ok {
				info("token expires: %s", exp.Local().Format(time.RFC1123))
			}
			if restaurants := a.session.Restaurants(); len(restaurants) > 0 {
				active := a.session.ActiveRestaurantID()
				info("restaurants:")
				for _, r := range restaurants {
					marker := " "
					if r.ID == active {
						marker = "*"
					}
					info("  %s %s (%s)", marker, r.Name, r.ID)
				}
			}
		},
	}
}

func profileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account profile",
	}
	cmd.AddCommand(profileSetNameCmd(a), profileChangePasswordCmd(a))
	return cmd
}

func profileSetNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-name <full name>",
		Short: "Change the account's display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(); err != nil {
				return err
			}
			if err := a.session.UpdateProfile(cmd.Context(), ports.ProfileUpdate{FullName: args[0]}); err != nil {
				return err
			}
			success("profile updated")
			return nil
		},
	}
}

func profileChangePasswordCmd(a *app) *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRole(); err != nil {
				return err
			}
			input := ports.PasswordChangeInput{CurrentPassword: current, NewPassword: next}
			if err := a.session.ChangePassword(cmd.Context(), input); err != nil {
				return err
			}
			success("password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current password")
	cmd.Flags().StringVar(&next, "new", "", "New password (min 6 characters)")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}
