package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
	"github.com/fooddash/client-go/internal/metrics"
)

// UserUpdate carries a partial profile refresh for UpdateUser. Empty fields
// are left untouched.
type UserUpdate struct {
	Name string
	Role domain.Role
}

// SessionStore owns authentication identity and role for the client
// instance. It starts in the Initializing state; Restore reads any persisted
// credentials and settles it into Authenticated or Unauthenticated. The
// persisted token and role are trusted directly on boot rather than
// re-validated against the server; the first failing authenticated call
// corrects a stale session via HandleUnauthorized.
type SessionStore struct {
	mu       sync.Mutex
	status   domain.SessionStatus
	session  domain.Session
	expired  bool
	storage  ports.Storage
	api      ports.AuthAPI
	validate *validator.Validate
	log      zerolog.Logger
}

// NewSession returns a store in the Initializing state. Call Restore before
// evaluating access.
func NewSession(storage ports.Storage, api ports.AuthAPI, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		status:   domain.StatusInitializing,
		storage:  storage,
		api:      api,
		validate: validator.New(),
		log:      log.With().Str("store", "session").Logger(),
	}
}

// Restore reads the persisted credential set and leaves the Initializing
// state. A persisted active restaurant that no longer references an owned
// restaurant is dropped.
func (s *SessionStore) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.read(ctx, keyToken)
	role := domain.Role(s.read(ctx, keyRole))

	if token == "" || !role.Valid() {
		s.status = domain.StatusUnauthenticated
		return
	}

	sess := domain.Session{
		Token: token,
		Role:  role,
		Name:  s.read(ctx, keyName),
	}
	if raw := s.read(ctx, keyRestaurants); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sess.Restaurants); err != nil {
			s.log.Warn().Err(err).Msg("discarding corrupt persisted restaurant list")
			sess.Restaurants = nil
		}
	}
	if active := s.read(ctx, keyActiveRestaurant); active != "" && sess.OwnsRestaurant(active) {
		sess.ActiveRestaurantID = active
	}

	s.session = sess
	s.status = domain.StatusAuthenticated
	s.log.Debug().Str("role", string(role)).Msg("session restored")
}

// Login authenticates against the remote API. The response must report
// success and carry a non-empty access token; anything else is an AuthError
// and the store stays Unauthenticated. On success the credential set is
// persisted and the server payload is returned for caller use, such as the
// post-login redirect.
func (s *SessionStore) Login(ctx context.Context, creds ports.Credentials) (*ports.LoginData, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, &domain.AuthError{Message: "a valid email and password are required"}
	}

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	if !res.Success || res.Data.AccessToken == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, &domain.AuthError{Message: res.Message}
	}

	sess := domain.Session{
		Token:       res.Data.AccessToken,
		Role:        res.Data.Role,
		Name:        res.Data.FullName,
		Restaurants: res.Data.Restaurants,
	}
	if sess.Role == domain.RoleRestaurantOwner && len(sess.Restaurants) > 0 {
		sess.ActiveRestaurantID = sess.Restaurants[0].ID
	}

	s.mu.Lock()
	s.session = sess
	s.status = domain.StatusAuthenticated
	s.expired = false
	s.persistSession(ctx, sess)
	s.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("role", string(sess.Role)).Msg("logged in")

	data := res.Data
	return &data, nil
}

// Register creates a new account. The session state is unchanged; the caller
// logs in afterwards. Returns the server's confirmation message.
func (s *SessionStore) Register(ctx context.Context, input ports.RegistrationInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", &domain.AuthError{Message: "registration details are incomplete or invalid"}
	}
	return s.api.Register(ctx, input)
}

// Logout clears all persisted session keys plus the cart, and transitions to
// Unauthenticated. Safe to call when already logged out.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked(ctx)
}

// HandleUnauthorized is the forced-logout path, invoked when any
// authenticated call is rejected with a 401. It records a session-expired
// notice for the UI layer.
func (s *SessionStore) HandleUnauthorized(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.StatusAuthenticated {
		return
	}
	s.logoutLocked(ctx)
	s.expired = true
	metrics.SessionInvalidationsTotal.Inc()
	s.log.Warn().Msg("session rejected by server, logging out")
}

// SessionExpired reports whether the last logout was forced by the server.
// Cleared on the next successful login.
func (s *SessionStore) SessionExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// UpdateUser merges a partial profile refresh into the session and
// re-persists only the fields that changed. Unset fields are ignored.
func (s *SessionStore) UpdateUser(ctx context.Context, update UserUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.StatusAuthenticated {
		return
	}
	if update.Name != "" && update.Name != s.session.Name {
		s.session.Name = update.Name
		s.write(ctx, keyName, update.Name)
	}
	if update.Role != "" && update.Role.Valid() && update.Role != s.session.Role {
		s.session.Role = update.Role
		s.write(ctx, keyRole, string(update.Role))
	}
}

// UpdateProfile pushes a profile change to the server and, on success, merges
// the confirmed name into the session.
func (s *SessionStore) UpdateProfile(ctx context.Context, input ports.ProfileUpdate) error {
	profile, err := s.api.UpdateProfile(ctx, input)
	if err != nil {
		return err
	}
	s.UpdateUser(ctx, UserUpdate{Name: profile.FullName, Role: profile.Role})
	return nil
}

// ChangePassword forwards a password change. The session, including the
// current token, is untouched.
func (s *SessionStore) ChangePassword(ctx context.Context, input ports.PasswordChangeInput) error {
	if err := s.validate.Struct(input); err != nil {
		return &domain.AuthError{Message: "new password must be at least 6 characters"}
	}
	return s.api.ChangePassword(ctx, input)
}

// SetActiveRestaurant selects the owner's working restaurant context. The id
// must reference an owned restaurant.
func (s *SessionStore) SetActiveRestaurant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.StatusAuthenticated {
		return domain.ErrNotAuthenticated
	}
	if !s.session.OwnsRestaurant(id) {
		return domain.ErrUnknownRestaurant
	}
	s.session.ActiveRestaurantID = id
	s.write(ctx, keyActiveRestaurant, id)
	return nil
}

// TokenExpiry returns the unverified exp claim of the access token, when the
// token is a JWT carrying one. Informational only; nothing in the store acts
// on it.
func (s *SessionStore) TokenExpiry() (time.Time, bool) {
	s.mu.Lock()
	token := s.session.Token
	s.mu.Unlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Status returns the session lifecycle state.
func (s *SessionStore) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Token returns the bearer credential, or "" when unauthenticated.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// Role returns the session role, or "" when unauthenticated.
func (s *SessionStore) Role() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Role
}

// Name returns the display name.
func (s *SessionStore) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Name
}

// Restaurants returns a copy of the owned-restaurant list.
func (s *SessionStore) Restaurants() []domain.RestaurantSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RestaurantSummary, len(s.session.Restaurants))
	copy(out, s.session.Restaurants)
	return out
}

// ActiveRestaurantID returns the selected owner restaurant context.
func (s *SessionStore) ActiveRestaurantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ActiveRestaurantID
}

// HasRole reports whether the session is authenticated with the given role.
func (s *SessionStore) HasRole(r domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == domain.StatusAuthenticated && s.session.Role == r
}

func (s *SessionStore) IsAdmin() bool           { return s.HasRole(domain.RoleAdmin) }
func (s *SessionStore) IsCustomer() bool        { return s.HasRole(domain.RoleCustomer) }
func (s *SessionStore) IsOwner() bool           { return s.HasRole(domain.RoleRestaurantOwner) }
func (s *SessionStore) IsDeliveryPartner() bool { return s.HasRole(domain.RoleDeliveryPartner) }

// logoutLocked clears persisted and in-memory state. Caller holds the mutex.
func (s *SessionStore) logoutLocked(ctx context.Context) {
	keys := []string{keyToken, keyRole, keyName, keyRestaurants, keyActiveRestaurant, keyCart}
	if err := s.storage.Delete(ctx, keys...); err != nil {
		s.log.Error().Err(err).Msg("failed to clear persisted session")
	}
	s.session = domain.Session{}
	s.status = domain.StatusUnauthenticated
	s.expired = false
}

// persistSession writes the full credential set. Persistence failures are
// logged and swallowed; the in-memory session stays authoritative for the
// rest of this run. Caller holds the mutex.
func (s *SessionStore) persistSession(ctx context.Context, sess domain.Session) {
	s.write(ctx, keyToken, sess.Token)
	s.write(ctx, keyRole, string(sess.Role))
	s.write(ctx, keyName, sess.Name)

	restaurants, err := json.Marshal(sess.Restaurants)
	if err == nil {
		s.write(ctx, keyRestaurants, string(restaurants))
	}
	if sess.ActiveRestaurantID != "" {
		s.write(ctx, keyActiveRestaurant, sess.ActiveRestaurantID)
	} else {
		if err := s.storage.Delete(ctx, keyActiveRestaurant); err != nil {
			s.log.Error().Err(err).Msg("failed to clear active restaurant")
		}
	}
}

func (s *SessionStore) write(ctx context.Context, key, value string) {
	if err := s.storage.Set(ctx, key, value); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("persist failed")
	}
}

func (s *SessionStore) read(ctx context.Context, key string) string {
	v, err := s.storage.Get(ctx, key)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error().Err(err).Str("key", key).Msg("read failed")
	}
	return v
}
