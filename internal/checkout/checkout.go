// Package checkout turns the in-progress cart into a placed order.
package checkout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

// Cart is the slice of the cart store checkout needs.
type Cart interface {
	Items() []domain.CartItem
	RestaurantID() string
	Totals() domain.Totals
	Clear(ctx context.Context)
}

// Service places orders built from the cart. The cart is cleared only after
// the server confirms the order; any failure leaves it untouched so the user
// can retry.
type Service struct {
	cart   Cart
	orders ports.OrderAPI
	log    zerolog.Logger
}

func NewService(cart Cart, orders ports.OrderAPI, log zerolog.Logger) *Service {
	return &Service{cart: cart, orders: orders, log: log.With().Str("component", "checkout").Logger()}
}

// PlaceOrder submits the current cart and returns the created order id for
// the confirmation display.
func (s *Service) PlaceOrder(ctx context.Context) (string, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return "", domain.ErrEmptyCart
	}

	input := ports.PlaceOrderInput{
		RestaurantID: s.cart.RestaurantID(),
		Items:        make([]ports.OrderItemInput, 0, len(items)),
	}
	for _, it := range items {
		input.Items = append(input.Items, ports.OrderItemInput{MenuItemID: it.ID, Quantity: it.Quantity})
	}

	orderID, err := s.orders.PlaceOrder(ctx, input)
	if err != nil {
		return "", err
	}

	s.cart.Clear(ctx)
	s.log.Info().Str("order_id", orderID).Msg("order placed")
	return orderID, nil
}
