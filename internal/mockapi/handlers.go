package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

// Handler serves every route of the mock API.
type Handler struct {
	store     *Store
	jwtSecret string
}

func NewHandler(store *Store, jwtSecret string) *Handler {
	return &Handler{store: store, jwtSecret: jwtSecret}
}

func ok(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, response{Success: true, Message: message, Data: data})
}

// Login authenticates an account and returns the access token envelope.
func (h *Handler) Login(c echo.Context) error {
	var req ports.Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := signToken(u, h.jwtSecret)
	if err != nil {
		return err
	}

	return ok(c, "login successful", ports.LoginData{
		AccessToken: token,
		Role:        u.Role,
		FullName:    u.FullName,
		Restaurants: u.Restaurants,
	})
}

// Register creates a new account.
func (h *Handler) Register(c echo.Context) error {
	var req ports.RegistrationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.store.CreateUser(req.FullName, req.Email, req.Password, req.Role); err != nil {
		return err
	}
	return ok(c, "Registration successful. Please log in.", nil)
}

// UpdateProfile changes the authenticated account's display name.
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req ports.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.store.UpdateName(userEmail(c), req.FullName)
	if err != nil {
		return err
	}
	return ok(c, "profile updated", ports.ProfileData{FullName: u.FullName, Email: u.Email, Role: u.Role})
}

// ChangePassword rotates the authenticated account's password.
func (h *Handler) ChangePassword(c echo.Context) error {
	var req ports.PasswordChangeInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.store.ChangePassword(userEmail(c), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return ok(c, "password changed", nil)
}

// Restaurants lists the browsable restaurants.
func (h *Handler) Restaurants(c echo.Context) error {
	return ok(c, "", h.store.Restaurants())
}

// Menu returns one restaurant's menu.
func (h *Handler) Menu(c echo.Context) error {
	menu, err := h.store.Menu(c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, "", menu)
}

// OwnerRestaurants lists the restaurants owned by the authenticated account.
func (h *Handler) OwnerRestaurants(c echo.Context) error {
	u, found := h.store.UserByEmail(userEmail(c))
	if !found {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
	}
	restaurants := u.Restaurants
	if restaurants == nil {
		restaurants = []domain.RestaurantSummary{}
	}
	return ok(c, "", restaurants)
}

// PlaceOrder validates and records an order, returning its id.
func (h *Handler) PlaceOrder(c echo.Context) error {
	var req ports.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.RestaurantID == "" || len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "restaurantId and items are required")
	}
	for _, it := range req.Items {
		if it.MenuItemID == "" || it.Quantity <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "each item needs a menuItemId and a positive quantity")
		}
	}

	order, err := h.store.PlaceOrder(userID(c), req)
	if err != nil {
		return err
	}
	return ok(c, "order placed", map[string]string{"orderId": order.ID})
}

// MyOrders returns the authenticated customer's order history.
func (h *Handler) MyOrders(c echo.Context) error {
	orders := h.store.OrdersForUser(userID(c))
	out := make([]ports.OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, ports.OrderSummary{
			ID:             o.ID,
			RestaurantID:   o.RestaurantID,
			RestaurantName: o.RestaurantName,
			Status:         o.Status,
			Total:          o.Total,
			CreatedAt:      o.CreatedAt,
		})
	}
	return ok(c, "", out)
}

// CancelOrder cancels one of the customer's own orders.
func (h *Handler) CancelOrder(c echo.Context) error {
	if err := h.store.CancelOrder(userID(c), c.Param("id")); err != nil {
		return err
	}
	return ok(c, "order cancelled", nil)
}

// Health is the liveness probe.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
