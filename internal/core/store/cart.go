package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
	"github.com/fooddash/client-go/internal/metrics"
)

// persistedCart is the durable representation of the cart. The pending
// conflict and its flag are UI-transient and deliberately absent, so a reload
// never resurrects an unresolved conflict prompt.
type persistedCart struct {
	Items          []domain.CartItem `json:"items"`
	RestaurantID   string            `json:"restaurantId"`
	RestaurantName string            `json:"restaurantName"`
}

// CartStore owns the in-progress order. Every mutation is a single atomic
// transition of the pure domain.Cart value followed by a persistence write;
// persistence failures are logged without failing the mutation, the in-memory
// cart stays authoritative.
type CartStore struct {
	mu      sync.Mutex
	cart    domain.Cart
	storage ports.Storage
	log     zerolog.Logger
}

func NewCart(storage ports.Storage, log zerolog.Logger) *CartStore {
	return &CartStore{
		storage: storage,
		log:     log.With().Str("store", "cart").Logger(),
	}
}

// Restore loads the persisted cart. A missing or corrupt record degrades to
// an empty cart.
func (s *CartStore) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(ctx, keyCart)
	if err != nil {
		s.log.Error().Err(err).Msg("cart read failed")
		return
	}
	if raw == "" {
		return
	}

	var saved persistedCart
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt persisted cart")
		return
	}
	s.cart = domain.Cart{
		Items:          saved.Items,
		RestaurantID:   saved.RestaurantID,
		RestaurantName: saved.RestaurantName,
	}
}

// AddItem adds one unit of item on behalf of the given restaurant. When the
// cart already belongs to a different restaurant the addition is parked as a
// pending conflict instead, and true is returned so the caller can prompt the
// user to resolve it.
func (s *CartStore) AddItem(ctx context.Context, item domain.CartItem, restaurantID, restaurantName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.cart.Add(item, restaurantID, restaurantName)
	if s.cart.ConflictOpen {
		metrics.CartConflictsTotal.WithLabelValues("raised").Inc()
		return true
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	s.persist(ctx)
	return false
}

// ResolveConflict settles the pending cross-restaurant addition: confirming
// replaces the cart with the pending item at quantity 1, rejecting keeps the
// existing cart. Idempotent when no conflict is open.
func (s *CartStore) ResolveConflict(ctx context.Context, confirm bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hadPending := s.cart.Pending != nil
	s.cart = s.cart.ResolveConflict(confirm)
	if !hadPending {
		return
	}
	if confirm {
		metrics.CartConflictsTotal.WithLabelValues("confirmed").Inc()
	} else {
		metrics.CartConflictsTotal.WithLabelValues("rejected").Inc()
	}
	s.persist(ctx)
}

// IncreaseQty bumps the quantity of the matching item; missing items are a
// no-op.
func (s *CartStore) IncreaseQty(ctx context.Context, itemID string) {
	s.mutate(ctx, "increase", func(c domain.Cart) domain.Cart { return c.Increase(itemID) })
}

// DecreaseQty lowers the quantity of the matching item, removing it at zero.
// Removing the last item clears the cart's restaurant identity.
func (s *CartStore) DecreaseQty(ctx context.Context, itemID string) {
	s.mutate(ctx, "decrease", func(c domain.Cart) domain.Cart { return c.Decrease(itemID) })
}

// RemoveItem drops the item unconditionally.
func (s *CartStore) RemoveItem(ctx context.Context, itemID string) {
	s.mutate(ctx, "remove", func(c domain.Cart) domain.Cart { return c.Remove(itemID) })
}

// Clear resets to the empty cart. Called after successful order placement and
// for the explicit clear action.
func (s *CartStore) Clear(ctx context.Context) {
	s.mutate(ctx, "clear", func(c domain.Cart) domain.Cart { return c.Clear() })
}

// ItemQty returns the quantity of the given item, 0 when absent.
func (s *CartStore) ItemQty(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Quantity(itemID)
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.cart.Items))
	copy(out, s.cart.Items)
	return out
}

// RestaurantID returns the owning restaurant, "" for an empty cart.
func (s *CartStore) RestaurantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.RestaurantID
}

// RestaurantName returns the owning restaurant's display name.
func (s *CartStore) RestaurantName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.RestaurantName
}

// Totals recomputes the derived pricing values.
func (s *CartStore) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Totals()
}

// PendingConflict returns the parked addition while a conflict prompt is
// open.
func (s *CartStore) PendingConflict() (domain.PendingAddition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Pending == nil {
		return domain.PendingAddition{}, false
	}
	return *s.cart.Pending, true
}

func (s *CartStore) mutate(ctx context.Context, action string, fn func(domain.Cart) domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = fn(s.cart)
	metrics.CartMutationsTotal.WithLabelValues(action).Inc()
	s.persist(ctx)
}

// persist rewrites the durable representation. Caller holds the mutex.
func (s *CartStore) persist(ctx context.Context) {
	saved := persistedCart{
		Items:          s.cart.Items,
		RestaurantID:   s.cart.RestaurantID,
		RestaurantName: s.cart.RestaurantName,
	}
	if saved.Items == nil {
		saved.Items = []domain.CartItem{}
	}
	raw, err := json.Marshal(saved)
	if err != nil {
		s.log.Error().Err(err).Msg("cart marshal failed")
		return
	}
	if err := s.storage.Set(ctx, keyCart, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("cart persist failed")
	}
}
