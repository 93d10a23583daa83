package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks request timeouts and connectivity failures, as
	// opposed to errors the server reported.
	ErrNetwork = errors.New("network failure")

	// ErrSessionExpired is returned when any authenticated call comes back
	// with a 401. Receiving it forces an implicit logout.
	ErrSessionExpired = errors.New("session expired")

	// ErrPermission is returned on a 403: authenticated but not allowed.
	// It never alters session state.
	ErrPermission = errors.New("permission denied")

	// ErrNotAuthenticated is returned by operations that require a login.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnknownRestaurant is returned when an owner selects a restaurant
	// outside their owned set.
	ErrUnknownRestaurant = errors.New("restaurant not owned by this account")

	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// AuthError is a login or registration rejection. Message carries the
// server-supplied reason when one was given.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "login failed"
	}
	return e.Message
}

// APIError is a server-reported failure on a non-auth endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}
