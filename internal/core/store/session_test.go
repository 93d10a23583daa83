package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
	"github.com/fooddash/client-go/internal/infrastructure/storage"
)

type stubAuthAPI struct {
	loginRes    *ports.LoginResult
	loginErr    error
	registerMsg string
	registerErr error
	profile     *ports.ProfileData
	profileErr  error
	passwordErr error
}

func (s *stubAuthAPI) Login(context.Context, ports.Credentials) (*ports.LoginResult, error) {
	return s.loginRes, s.loginErr
}

func (s *stubAuthAPI) Register(context.Context, ports.RegistrationInput) (string, error) {
	return s.registerMsg, s.registerErr
}

func (s *stubAuthAPI) UpdateProfile(context.Context, ports.ProfileUpdate) (*ports.ProfileData, error) {
	return s.profile, s.profileErr
}

func (s *stubAuthAPI) ChangePassword(context.Context, ports.PasswordChangeInput) error {
	return s.passwordErr
}

func okLogin() *ports.LoginResult {
	return &ports.LoginResult{
		Success: true,
		Data: ports.LoginData{
			AccessToken: "tok-123",
			Role:        domain.RoleCustomer,
			FullName:    "Casey Customer",
		},
	}
}

func validCreds() ports.Credentials {
	return ports.Credentials{Email: "casey@example.com", Password: "password123"}
}

func TestSessionStore_Login_Success(t *testing.T) {
	mem := storage.NewMemory()
	s := NewSession(mem, &stubAuthAPI{loginRes: okLogin()}, zerolog.Nop())
	s.Restore(context.Background())

	data, err := s.Login(context.Background(), validCreds())
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if data.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role in payload: %s", data.Role)
	}
	if s.Status() != domain.StatusAuthenticated {
		t.Fatalf("expected Authenticated, got %v", s.Status())
	}
	if s.Token() != "tok-123" || s.Name() != "Casey Customer" {
		t.Fatalf("session not populated: token=%q name=%q", s.Token(), s.Name())
	}

	// The credential set must be persisted for the next boot.
	for key, want := range map[string]string{
		keyToken: "tok-123",
		keyRole:  string(domain.RoleCustomer),
		keyName:  "Casey Customer",
	} {
		if got, _ := mem.Get(context.Background(), key); got != want {
			t.Fatalf("persisted %s = %q, want %q", key, got, want)
		}
	}
}

func TestSessionStore_Login_OwnerGetsActiveRestaurant(t *testing.T) {
	res := okLogin()
	res.Data.Role = domain.RoleRestaurantOwner
	res.Data.Restaurants = []domain.RestaurantSummary{
		{ID: "r-burger-barn", Name: "Burger Barn"},
		{ID: "r-spice-garden", Name: "Spice Garden"},
	}
	s := NewSession(storage.NewMemory(), &stubAuthAPI{loginRes: res}, zerolog.Nop())
	s.Restore(context.Background())

	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got := s.ActiveRestaurantID(); got != "r-burger-barn" {
		t.Fatalf("expected first owned restaurant active, got %q", got)
	}
}

func TestSessionStore_Login_MissingTokenIsAuthError(t *testing.T) {
	res := &ports.LoginResult{Success: true, Message: "odd but empty"}
	mem := storage.NewMemory()
	s := NewSession(mem, &stubAuthAPI{loginRes: res}, zerolog.Nop())
	s.Restore(context.Background())

	_, err := s.Login(context.Background(), validCreds())
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if s.Status() != domain.StatusUnauthenticated {
		t.Fatalf("failed login changed status to %v", s.Status())
	}
	if got, _ := mem.Get(context.Background(), keyToken); got != "" {
		t.Fatalf("failed login persisted a token: %q", got)
	}
}

func TestSessionStore_Login_ServerFailureMessageSurfaces(t *testing.T) {
	res := &ports.LoginResult{Success: false, Message: "invalid email or password"}
	s := NewSession(storage.NewMemory(), &stubAuthAPI{loginRes: res}, zerolog.Nop())
	s.Restore(context.Background())

	_, err := s.Login(context.Background(), validCreds())
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "invalid email or password" {
		t.Fatalf("server message lost: %q", authErr.Message)
	}
}

func TestSessionStore_Login_ValidatesCredentials(t *testing.T) {
	s := NewSession(storage.NewMemory(), &stubAuthAPI{loginRes: okLogin()}, zerolog.Nop())
	s.Restore(context.Background())

	if _, err := s.Login(context.Background(), ports.Credentials{Email: "not-an-email", Password: "x"}); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := s.Login(context.Background(), ports.Credentials{Email: "a@b.co"}); err == nil {
		t.Fatalf("expected validation error for empty password")
	}
}

func TestSessionStore_Logout_ClearsEverythingIncludingCart(t *testing.T) {
	mem := storage.NewMemory()
	_ = mem.Set(context.Background(), keyCart, `{"items":[]}`)

	s := NewSession(mem, &stubAuthAPI{loginRes: okLogin()}, zerolog.Nop())
	s.Restore(context.Background())
	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	s.Logout(context.Background())
	if s.Status() != domain.StatusUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", s.Status())
	}
	for _, key := range []string{keyToken, keyRole, keyName, keyRestaurants, keyActiveRestaurant, keyCart} {
		if got, _ := mem.Get(context.Background(), key); got != "" {
			t.Fatalf("key %s survived logout: %q", key, got)
		}
	}

	// Logging out again must be harmless.
	s.Logout(context.Background())
	if s.Status() != domain.StatusUnauthenticated {
		t.Fatalf("repeated logout changed status to %v", s.Status())
	}
}

func TestSessionStore_Restore_TrustsPersistedCredentials(t *testing.T) {
	mem := storage.NewMemory()
	_ = mem.Set(context.Background(), keyToken, "tok-456")
	_ = mem.Set(context.Background(), keyRole, string(domain.RoleAdmin))
	_ = mem.Set(context.Background(), keyName, "Ada Admin")

	s := NewSession(mem, &stubAuthAPI{}, zerolog.Nop())
	if s.Status() != domain.StatusInitializing {
		t.Fatalf("expected Initializing before Restore, got %v", s.Status())
	}

	s.Restore(context.Background())
	if s.Status() != domain.StatusAuthenticated {
		t.Fatalf("expected Authenticated, got %v", s.Status())
	}
	if !s.IsAdmin() {
		t.Fatalf("expected admin role, got %s", s.Role())
	}
}

func TestSessionStore_Restore_InvalidRoleMeansUnauthenticated(t *testing.T) {
	mem := storage.NewMemory()
	_ = mem.Set(context.Background(), keyToken, "tok-456")
	_ = mem.Set(context.Background(), keyRole, "SUPERUSER")

	s := NewSession(mem, &stubAuthAPI{}, zerolog.Nop())
	s.Restore(context.Background())
	if s.Status() != domain.StatusUnauthenticated {
		t.Fatalf("expected Unauthenticated for unknown role, got %v", s.Status())
	}
}

func TestSessionStore_Restore_DropsDanglingActiveRestaurant(t *testing.T) {
	mem := storage.NewMemory()
	_ = mem.Set(context.Background(), keyToken, "tok-456")
	_ = mem.Set(context.Background(), keyRole, string(domain.RoleRestaurantOwner))
	_ = mem.Set(context.Background(), keyRestaurants, `[{"id":"r-burger-barn","name":"Burger Barn"}]`)
	_ = mem.Set(context.Background(), keyActiveRestaurant, "r-gone")

	s := NewSession(mem, &stubAuthAPI{}, zerolog.Nop())
	s.Restore(context.Background())
	if got := s.ActiveRestaurantID(); got != "" {
		t.Fatalf("dangling active restaurant survived: %q", got)
	}
}

func TestSessionStore_Restore_CorruptRestaurantListDegrades(t *testing.T) {
	mem := storage.NewMemory()
	_ = mem.Set(context.Background(), keyToken, "tok-456")
	_ = mem.Set(context.Background(), keyRole, string(domain.RoleRestaurantOwner))
	_ = mem.Set(context.Background(), keyRestaurants, `{not json`)

	s := NewSession(mem, &stubAuthAPI{}, zerolog.Nop())
	s.Restore(context.Background())
	if s.Status() != domain.StatusAuthenticated {
		t.Fatalf("corrupt restaurant list broke restore: %v", s.Status())
	}
	if len(s.Restaurants()) != 0 {
		t.Fatalf("expected empty restaurant list, got %+v", s.Restaurants())
	}
}

func TestSessionStore_HandleUnauthorized(t *testing.T) {
	mem := storage.NewMemory()
	s := NewSession(mem, &stubAuthAPI{loginRes: okLogin()}, zerolog.Nop())
	s.Restore(context.Background())

	// A rejected call while logged out must not flag expiry.
	s.HandleUnauthorized(context.Background())
	if s.SessionExpired() {
		t.Fatalf("expiry flagged without a session")
	}

	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	s.HandleUnauthorized(context.Background())
	if s.Status() != domain.StatusUnauthenticated {
		t.Fatalf("expected forced logout, got %v", s.Status())
	}
	if !s.SessionExpired() {
		t.Fatalf("expected expiry flag")
	}
	if got, _ := mem.Get(context.Background(), keyToken); got != "" {
		t.Fatalf("token survived forced logout: %q", got)
	}

	// A fresh login clears the flag.
	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if s.SessionExpired() {
		t.Fatalf("expiry flag survived a new login")
	}
}

func TestSessionStore_UpdateUser_PersistsOnlyChanges(t *testing.T) {
	mem := storage.NewMemory()
	s := NewSession(mem, &stubAuthAPI{loginRes: okLogin()}, zerolog.Nop())
	s.Restore(context.Background())
	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	s.UpdateUser(context.Background(), UserUpdate{Name: "Casey Q. Customer"})
	if s.Name() != "Casey Q. Customer" {
		t.Fatalf("name not updated: %q", s.Name())
	}
	if got, _ := mem.Get(context.Background(), keyName); got != "Casey Q. Customer" {
		t.Fatalf("name not re-persisted: %q", got)
	}
	if got, _ := mem.Get(context.Background(), keyRole); got != string(domain.RoleCustomer) {
		t.Fatalf("role changed unexpectedly: %q", got)
	}

	// An unset update leaves everything alone.
	s.UpdateUser(context.Background(), UserUpdate{})
	if s.Name() != "Casey Q. Customer" {
		t.Fatalf("empty update changed the name: %q", s.Name())
	}
}

func TestSessionStore_SetActiveRestaurant(t *testing.T) {
	res := okLogin()
	res.Data.Role = domain.RoleRestaurantOwner
	res.Data.Restaurants = []domain.RestaurantSummary{{ID: "r-burger-barn"}, {ID: "r-spice-garden"}}
	mem := storage.NewMemory()
	s := NewSession(mem, &stubAuthAPI{loginRes: res}, zerolog.Nop())
	s.Restore(context.Background())
	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := s.SetActiveRestaurant(context.Background(), "r-spice-garden"); err != nil {
		t.Fatalf("SetActiveRestaurant returned error: %v", err)
	}
	if got, _ := mem.Get(context.Background(), keyActiveRestaurant); got != "r-spice-garden" {
		t.Fatalf("active restaurant not persisted: %q", got)
	}

	if err := s.SetActiveRestaurant(context.Background(), "r-nope"); !errors.Is(err, domain.ErrUnknownRestaurant) {
		t.Fatalf("expected ErrUnknownRestaurant, got %v", err)
	}
}

func TestSessionStore_TokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	res := okLogin()
	res.Data.AccessToken = token
	s := NewSession(storage.NewMemory(), &stubAuthAPI{loginRes: res}, zerolog.Nop())
	s.Restore(context.Background())
	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	got, ok := s.TokenExpiry()
	if !ok {
		t.Fatalf("expected an expiry")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}
}

func TestSessionStore_TokenExpiry_OpaqueToken(t *testing.T) {
	res := okLogin()
	res.Data.AccessToken = "not-a-jwt"
	s := NewSession(storage.NewMemory(), &stubAuthAPI{loginRes: res}, zerolog.Nop())
	s.Restore(context.Background())
	if _, err := s.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, ok := s.TokenExpiry(); ok {
		t.Fatalf("opaque token reported an expiry")
	}
}
