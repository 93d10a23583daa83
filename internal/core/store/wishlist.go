package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

// WishlistStore holds the persisted set of favorited restaurants,
// deduplicated by id and kept in insertion order.
type WishlistStore struct {
	mu      sync.Mutex
	items   []domain.RestaurantSummary
	storage ports.Storage
	log     zerolog.Logger
}

func NewWishlist(storage ports.Storage, log zerolog.Logger) *WishlistStore {
	return &WishlistStore{
		storage: storage,
		log:     log.With().Str("store", "wishlist").Logger(),
	}
}

// Restore loads the persisted wishlist; corrupt data degrades to empty.
func (s *WishlistStore) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(ctx, keyWishlist)
	if err != nil {
		s.log.Error().Err(err).Msg("wishlist read failed")
		return
	}
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt persisted wishlist")
		s.items = nil
	}
}

// Toggle removes the restaurant when already wishlisted, otherwise appends
// it. Returns true when the restaurant is wishlisted after the call.
func (s *WishlistStore) Toggle(ctx context.Context, r domain.RestaurantSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID == r.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return false
		}
	}
	s.items = append(s.items, r)
	s.persist(ctx)
	return true
}

// IsWishlisted reports membership by restaurant id.
func (s *WishlistStore) IsWishlisted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the wishlist in insertion order.
func (s *WishlistStore) Items() []domain.RestaurantSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RestaurantSummary, len(s.items))
	copy(out, s.items)
	return out
}

// persist rewrites the full sequence. Caller holds the mutex.
func (s *WishlistStore) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []domain.RestaurantSummary{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Error().Err(err).Msg("wishlist marshal failed")
		return
	}
	if err := s.storage.Set(ctx, keyWishlist, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("wishlist persist failed")
	}
}
