// Package mockapi is an in-memory stand-in for the remote FoodDash REST API.
// It serves the exact contract the client consumes (envelope responses,
// bearer auth, role checks) over seeded data, so the CLI and the integration
// tests can run with zero external services. It is not the real backend and
// does not try to be durable.
package mockapi

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

var (
	errUserExists         = errors.New("an account with this email already exists")
	errInvalidCredentials = errors.New("invalid email or password")
	errRestaurantNotFound = errors.New("restaurant not found")
	errOrderNotFound      = errors.New("order not found")
	errMenuMismatch       = errors.New("menu item does not belong to this restaurant")
	errNotCancellable     = errors.New("order can no longer be cancelled")
)

// User is a seeded or registered account.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash []byte
	Role         domain.Role
	Restaurants  []domain.RestaurantSummary
}

// Order is a placed order.
type Order struct {
	ID             string
	UserID         string
	RestaurantID   string
	RestaurantName string
	Items          []ports.OrderItemInput
	Status         string
	Total          decimal.Decimal
	CreatedAt      time.Time
}

// Store holds all mock state behind one mutex. Request volume is a single
// developer, contention is not a concern.
type Store struct {
	mu          sync.Mutex
	users       map[string]*User // keyed by email
	restaurants []domain.RestaurantSummary
	menus       map[string][]ports.MenuItem
	orders      map[string]*Order
}

// NewStore seeds restaurants, menus and one demo account per role. Every
// demo account's password is "password123".
func NewStore() *Store {
	s := &Store{
		users:  make(map[string]*User),
		orders: make(map[string]*Order),
		menus:  make(map[string][]ports.MenuItem),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.restaurants = []domain.RestaurantSummary{
		{ID: "r-burger-barn", Name: "Burger Barn", Cuisine: "Fast Food", Rating: 4.5, DeliveryTime: "25-30 min", IsOpen: true},
		{ID: "r-spice-garden", Name: "Spice Garden", Cuisine: "Indian", Rating: 4.3, DeliveryTime: "35-40 min", IsOpen: true},
		{ID: "r-pizza-palace", Name: "Pizza Palace", Cuisine: "Italian", Rating: 4.7, DeliveryTime: "30-40 min", IsOpen: false},
		{ID: "r-wok-and-roll", Name: "Wok & Roll", Cuisine: "Chinese", Rating: 4.1, DeliveryTime: "20-25 min", IsOpen: true},
	}
	s.menus["r-burger-barn"] = []ports.MenuItem{
		{ID: "m-classic-burger", Name: "Classic Burger", Price: decimal.NewFromInt(149), Category: "Burgers"},
		{ID: "m-cheese-burger", Name: "Cheese Burger", Price: decimal.NewFromInt(179), Category: "Burgers"},
		{ID: "m-fries", Name: "Fries", Price: decimal.NewFromInt(99), Category: "Sides"},
	}
	s.menus["r-spice-garden"] = []ports.MenuItem{
		{ID: "m-butter-chicken", Name: "Butter Chicken", Price: decimal.NewFromInt(329), Category: "Mains"},
		{ID: "m-garlic-naan", Name: "Garlic Naan", Price: decimal.NewFromInt(59), Category: "Breads"},
	}
	s.menus["r-pizza-palace"] = []ports.MenuItem{
		{ID: "m-margherita", Name: "Margherita", Price: decimal.NewFromInt(249), Category: "Pizza"},
	}
	s.menus["r-wok-and-roll"] = []ports.MenuItem{
		{ID: "m-hakka-noodles", Name: "Hakka Noodles", Price: decimal.NewFromInt(189), Category: "Noodles"},
	}

	owner := s.mustSeedUser("Olivia Owner", "owner@fooddash.dev", domain.RoleRestaurantOwner)
	owner.Restaurants = s.restaurants[:2]
	s.mustSeedUser("Casey Customer", "customer@fooddash.dev", domain.RoleCustomer)
	s.mustSeedUser("Ada Admin", "admin@fooddash.dev", domain.RoleAdmin)
	s.mustSeedUser("Riley Rider", "rider@fooddash.dev", domain.RoleDeliveryPartner)
}

func (s *Store) mustSeedUser(name, email string, role domain.Role) *User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("mockapi: seed password hash: %v", err))
	}
	u := &User{
		ID:           uuid.NewString(),
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	s.users[email] = u
	return u
}

// CreateUser registers a new account.
func (s *Store) CreateUser(fullName, email, password string, role domain.Role) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, errUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	s.users[email] = u
	return u, nil
}

// Authenticate verifies email/password and returns the account.
func (s *Store) Authenticate(email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return nil, errInvalidCredentials
	}
	return u, nil
}

// UserByEmail looks an account up.
func (s *Store) UserByEmail(email string) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	return u, ok
}

// UpdateName changes an account's display name.
func (s *Store) UpdateName(email, fullName string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, errInvalidCredentials
	}
	u.FullName = fullName
	return u, nil
}

// ChangePassword verifies the current password and stores the new one.
func (s *Store) ChangePassword(email, current, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(current)) != nil {
		return errInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// Restaurants returns the browsable restaurant list.
func (s *Store) Restaurants() []domain.RestaurantSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RestaurantSummary, len(s.restaurants))
	copy(out, s.restaurants)
	return out
}

// Menu returns a restaurant's menu.
func (s *Store) Menu(restaurantID string) ([]ports.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	menu, ok := s.menus[restaurantID]
	if !ok {
		return nil, errRestaurantNotFound
	}
	out := make([]ports.MenuItem, len(menu))
	copy(out, menu)
	return out, nil
}

// PlaceOrder validates the payload against the restaurant's menu, prices it
// the same way the client does, and records the order as PLACED.
func (s *Store) PlaceOrder(userID string, input ports.PlaceOrderInput) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var restaurant *domain.RestaurantSummary
	for i := range s.restaurants {
		if s.restaurants[i].ID == input.RestaurantID {
			restaurant = &s.restaurants[i]
			break
		}
	}
	if restaurant == nil {
		return nil, errRestaurantNotFound
	}

	menu := s.menus[input.RestaurantID]
	subtotal := decimal.Zero
	for _, line := range input.Items {
		var item *ports.MenuItem
		for i := range menu {
			if menu[i].ID == line.MenuItemID {
				item = &menu[i]
				break
			}
		}
		if item == nil {
			return nil, errMenuMismatch
		}
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	total := subtotal.Add(domain.DeliveryFee).Add(subtotal.Mul(domain.TaxRate).Round(0))
	order := &Order{
		ID:             uuid.NewString(),
		UserID:         userID,
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Items:          input.Items,
		Status:         "PLACED",
		Total:          total,
		CreatedAt:      time.Now().UTC(),
	}
	s.orders[order.ID] = order
	return order, nil
}

// OrdersForUser returns the user's orders, newest first.
func (s *Store) OrdersForUser(userID string) []*Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// CancelOrder cancels a PLACED order belonging to the user.
func (s *Store) CancelOrder(userID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok || o.UserID != userID {
		return errOrderNotFound
	}
	if o.Status != "PLACED" {
		return errNotCancellable
	}
	o.Status = "CANCELLED"
	return nil
}
