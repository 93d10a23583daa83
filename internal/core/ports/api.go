package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fooddash/client-go/internal/core/domain"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegistrationInput is the registration request payload.
type RegistrationInput struct {
	FullName string      `json:"fullName" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     domain.Role `json:"role" validate:"required,oneof=CUSTOMER ADMIN RESTAURANT_OWNER DELIVERY_PARTNER"`
}

// LoginData is the payload of a successful login response.
type LoginData struct {
	AccessToken string                     `json:"accessToken"`
	Role        domain.Role                `json:"role"`
	FullName    string                     `json:"fullname"`
	Restaurants []domain.RestaurantSummary `json:"restaurants"`
}

// LoginResult is the decoded login envelope. Success=false or a missing
// access token is a failure regardless of HTTP status.
type LoginResult struct {
	Success bool
	Message string
	Data    LoginData
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName string `json:"fullName" validate:"required"`
}

// ProfileData is the server's view of the profile after an update.
type ProfileData struct {
	FullName string      `json:"fullname"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

// PasswordChangeInput carries a password change request.
type PasswordChangeInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// AuthAPI is the authentication surface of the remote REST API.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, input RegistrationInput) (string, error)
	UpdateProfile(ctx context.Context, input ProfileUpdate) (*ProfileData, error)
	ChangePassword(ctx context.Context, input PasswordChangeInput) error
}

// OrderItemInput is one line of an order placement request.
type OrderItemInput struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderInput is the order placement request payload.
type PlaceOrderInput struct {
	RestaurantID string           `json:"restaurantId"`
	Items        []OrderItemInput `json:"items"`
}

// OrderSummary is one order in the customer's history.
type OrderSummary struct {
	ID             string          `json:"id"`
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	Status         string          `json:"status"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// OrderAPI is the order surface of the remote REST API.
type OrderAPI interface {
	// PlaceOrder submits the order and returns the created order id. A
	// successful return is the caller's trigger to clear the cart.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (string, error)
	MyOrders(ctx context.Context) ([]OrderSummary, error)
	CancelOrder(ctx context.Context, orderID string) error
}

// MenuItem is a menu entry as served by the restaurant endpoints.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
}

// RestaurantAPI is the browsing surface of the remote REST API.
type RestaurantAPI interface {
	Restaurants(ctx context.Context) ([]domain.RestaurantSummary, error)
	Menu(ctx context.Context, restaurantID string) ([]MenuItem, error)
	// OwnerRestaurants lists the restaurants owned by the authenticated
	// account.
	OwnerRestaurants(ctx context.Context) ([]domain.RestaurantSummary, error)
}
