package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
	"github.com/fooddash/client-go/internal/metrics"
)

// PlaceOrder submits the order and returns the created order id. The caller
// clears the cart only after a successful return.
func (c *Client) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (string, error) {
	env, code, err := c.call(ctx, http.MethodPost, "/orders/place", "/orders/place", nil, input, false)
	if err != nil {
		return "", err
	}
	if !env.Success {
		return "", &domain.APIError{StatusCode: code, Message: env.Message}
	}

	var data struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.OrderID == "" {
		return "", &domain.APIError{StatusCode: code, Message: "order id missing from response"}
	}

	metrics.OrdersPlacedTotal.Inc()
	return data.OrderID, nil
}

// MyOrders returns the authenticated customer's order history.
func (c *Client) MyOrders(ctx context.Context) ([]ports.OrderSummary, error) {
	env, code, err := c.call(ctx, http.MethodGet, "/orders", "/orders", nil, nil, false)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &domain.APIError{StatusCode: code, Message: env.Message}
	}

	var orders []ports.OrderSummary
	if err := json.Unmarshal(env.Data, &orders); err != nil {
		return nil, &domain.APIError{StatusCode: code, Message: "malformed order list"}
	}
	return orders, nil
}

// CancelOrder cancels one of the customer's own orders.
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	env, code, err := c.call(ctx, http.MethodPut, "/orders/{id}/cancel", "/orders/:id/cancel",
		map[string]string{"id": orderID}, nil, false)
	if err != nil {
		return err
	}
	if !env.Success {
		return &domain.APIError{StatusCode: code, Message: env.Message}
	}
	return nil
}
