package domain

// SessionStatus is the lifecycle state of the client session.
type SessionStatus string

const (
	// StatusInitializing is the boot state, before persisted credentials
	// have been read back.
	StatusInitializing SessionStatus = "initializing"
	StatusUnauthenticated SessionStatus = "unauthenticated"
	StatusAuthenticated   SessionStatus = "authenticated"
)

// RestaurantSummary is the lightweight restaurant view used in listings, the
// wishlist, and the owned-restaurant set of an owner session.
type RestaurantSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	DeliveryTime string  `json:"deliveryTime,omitempty"`
	Image        string  `json:"image,omitempty"`
	IsOpen       bool    `json:"isOpen"`
}

// Session models the authenticated identity for the current client instance.
// Token and Role are both set or both empty; Restaurants and
// ActiveRestaurantID are only meaningful for RESTAURANT_OWNER sessions.
type Session struct {
	Token              string
	Role               Role
	Name               string
	Restaurants        []RestaurantSummary
	ActiveRestaurantID string
}

// OwnsRestaurant reports whether id references one of the session's owned
// restaurants.
func (s Session) OwnsRestaurant(id string) bool {
	for _, r := range s.Restaurants {
		if r.ID == id {
			return true
		}
	}
	return false
}
