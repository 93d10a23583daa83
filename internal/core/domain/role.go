package domain

// Role is the account role attached to an authenticated session.
type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleAdmin           Role = "ADMIN"
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
	RoleDeliveryPartner Role = "DELIVERY_PARTNER"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleRestaurantOwner, RoleDeliveryPartner:
		return true
	}
	return false
}

// Home returns the default landing path for the role. It is the target of
// post-login and access-denied redirects.
func (r Role) Home() string {
	switch r {
	case RoleCustomer:
		return "/customer"
	case RoleAdmin:
		return "/admin"
	case RoleRestaurantOwner:
		return "/owner"
	case RoleDeliveryPartner:
		return "/delivery"
	default:
		return "/"
	}
}
