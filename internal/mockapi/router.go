package mockapi

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *Store, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("fooddash_mockapi"))

	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	h := NewHandler(store, jwtSecret)
	auth := Auth(jwtSecret)

	e.GET("/health", h.Health)
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	v1.POST("/auth/login", h.Login)
	v1.POST("/auth/register", h.Register)
	v1.PUT("/auth/profile", h.UpdateProfile, auth)
	v1.PUT("/auth/change-password", h.ChangePassword, auth)

	// --- Browsing routes (no auth required) ---
	v1.GET("/restaurants", h.Restaurants)
	v1.GET("/restaurants/:id/menu", h.Menu)

	// --- Role-gated routes ---
	v1.GET("/owner/restaurants", h.OwnerRestaurants, auth, RequireRoles(domain.RoleRestaurantOwner))

	orders := v1.Group("/orders", auth, RequireRoles(domain.RoleCustomer))
	orders.POST("/place", h.PlaceOrder)
	orders.GET("", h.MyOrders)
	orders.PUT("/:id/cancel", h.CancelOrder)

	return e
}
