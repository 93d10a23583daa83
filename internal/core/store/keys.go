package store

// Logical storage keys. Each store writes only its own keys; the single
// exception is logout, which also drops the cart so a new login never
// inherits the previous user's order in progress.
const (
	keyToken            = "session.token"
	keyRole             = "session.role"
	keyName             = "session.name"
	keyRestaurants      = "session.restaurants"
	keyActiveRestaurant = "session.activeRestaurant"
	keyCart             = "cart"
	keyWishlist         = "wishlist"
)
