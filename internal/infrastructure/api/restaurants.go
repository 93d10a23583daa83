package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

// Restaurants lists the browsable restaurants.
func (c *Client) Restaurants(ctx context.Context) ([]domain.RestaurantSummary, error) {
	env, code, err := c.call(ctx, http.MethodGet, "/restaurants", "/restaurants", nil, nil, false)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &domain.APIError{StatusCode: code, Message: env.Message}
	}

	var restaurants []domain.RestaurantSummary
	if err := json.Unmarshal(env.Data, &restaurants); err != nil {
		return nil, &domain.APIError{StatusCode: code, Message: "malformed restaurant list"}
	}
	return restaurants, nil
}

// Menu returns the menu of one restaurant.
func (c *Client) Menu(ctx context.Context, restaurantID string) ([]ports.MenuItem, error) {
	env, code, err := c.call(ctx, http.MethodGet, "/restaurants/{id}/menu", "/restaurants/:id/menu",
		map[string]string{"id": restaurantID}, nil, false)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &domain.APIError{StatusCode: code, Message: env.Message}
	}

	var menu []ports.MenuItem
	if err := json.Unmarshal(env.Data, &menu); err != nil {
		return nil, &domain.APIError{StatusCode: code, Message: "malformed menu"}
	}
	return menu, nil
}

// OwnerRestaurants lists the restaurants owned by the authenticated account.
func (c *Client) OwnerRestaurants(ctx context.Context) ([]domain.RestaurantSummary, error) {
	env, code, err := c.call(ctx, http.MethodGet, "/owner/restaurants", "/owner/restaurants", nil, nil, false)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &domain.APIError{StatusCode: code, Message: env.Message}
	}

	var restaurants []domain.RestaurantSummary
	if err := json.Unmarshal(env.Data, &restaurants); err != nil {
		return nil, &domain.APIError{StatusCode: code, Message: "malformed restaurant list"}
	}
	return restaurants, nil
}
