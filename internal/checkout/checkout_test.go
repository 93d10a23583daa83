package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

type stubCart struct {
	items        []domain.CartItem
	restaurantID string
	cleared      bool
}

func (c *stubCart) Items() []domain.CartItem { return c.items }
func (c *stubCart) RestaurantID() string     { return c.restaurantID }
func (c *stubCart) Totals() domain.Totals    { return domain.Totals{} }
func (c *stubCart) Clear(context.Context)    { c.cleared = true }

type stubOrderAPI struct {
	gotInput ports.PlaceOrderInput
	orderID  string
	err      error
}

func (o *stubOrderAPI) PlaceOrder(_ context.Context, input ports.PlaceOrderInput) (string, error) {
	o.gotInput = input
	return o.orderID, o.err
}

func (o *stubOrderAPI) MyOrders(context.Context) ([]ports.OrderSummary, error) { return nil, nil }
func (o *stubOrderAPI) CancelOrder(context.Context, string) error              { return nil }

func filledCart() *stubCart {
	return &stubCart{
		restaurantID: "r-1",
		items: []domain.CartItem{
			{ID: "m-1", Name: "One", Price: decimal.NewFromInt(100), Quantity: 2},
			{ID: "m-2", Name: "Two", Price: decimal.NewFromInt(50), Quantity: 1},
		},
	}
}

func TestService_PlaceOrder_Success(t *testing.T) {
	cart := filledCart()
	orders := &stubOrderAPI{orderID: "o-1"}
	svc := NewService(cart, orders, zerolog.Nop())

	id, err := svc.PlaceOrder(context.Background())
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if id != "o-1" {
		t.Fatalf("order id = %q, want o-1", id)
	}
	if !cart.cleared {
		t.Fatalf("cart not cleared after successful order")
	}

	if orders.gotInput.RestaurantID != "r-1" {
		t.Fatalf("restaurant id = %q", orders.gotInput.RestaurantID)
	}
	if len(orders.gotInput.Items) != 2 || orders.gotInput.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order lines: %+v", orders.gotInput.Items)
	}
}

func TestService_PlaceOrder_EmptyCart(t *testing.T) {
	svc := NewService(&stubCart{}, &stubOrderAPI{}, zerolog.Nop())

	if _, err := svc.PlaceOrder(context.Background()); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestService_PlaceOrder_FailureLeavesCart(t *testing.T) {
	cart := filledCart()
	orders := &stubOrderAPI{err: domain.ErrNetwork}
	svc := NewService(cart, orders, zerolog.Nop())

	if _, err := svc.PlaceOrder(context.Background()); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if cart.cleared {
		t.Fatalf("cart cleared despite failed order")
	}
}
