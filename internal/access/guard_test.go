package access

import (
	"testing"

	"github.com/fooddash/client-go/internal/core/domain"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.SessionStatus
		role       domain.Role
		allowed    []domain.Role
		requested  string
		wantAction Action
		wantTarget string
		wantFrom   string
	}{
		{
			name:       "initializing waits",
			status:     domain.StatusInitializing,
			allowed:    []domain.Role{domain.RoleAdmin},
			requested:  "/admin",
			wantAction: Wait,
		},
		{
			name:       "unauthenticated redirects to login with origin",
			status:     domain.StatusUnauthenticated,
			allowed:    []domain.Role{domain.RoleCustomer},
			requested:  "/checkout",
			wantAction: Redirect,
			wantTarget: LoginPath,
			wantFrom:   "/checkout",
		},
		{
			name:       "matching role granted",
			status:     domain.StatusAuthenticated,
			role:       domain.RoleCustomer,
			allowed:    []domain.Role{domain.RoleCustomer, domain.RoleAdmin},
			requested:  "/customer",
			wantAction: Grant,
		},
		{
			name:       "empty allowed set admits any authenticated role",
			status:     domain.StatusAuthenticated,
			role:       domain.RoleDeliveryPartner,
			requested:  "/profile",
			wantAction: Grant,
		},
		{
			name:       "wrong role sent to own home not an error page",
			status:     domain.StatusAuthenticated,
			role:       domain.RoleCustomer,
			allowed:    []domain.Role{domain.RoleAdmin},
			requested:  "/admin",
			wantAction: Redirect,
			wantTarget: "/customer",
		},
		{
			name:       "owner redirected to owner home",
			status:     domain.StatusAuthenticated,
			role:       domain.RoleRestaurantOwner,
			allowed:    []domain.Role{domain.RoleDeliveryPartner},
			requested:  "/delivery",
			wantAction: Redirect,
			wantTarget: "/owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.status, tt.role, tt.allowed, tt.requested)
			if got.Action != tt.wantAction {
				t.Fatalf("action = %v, want %v", got.Action, tt.wantAction)
			}
			if got.Target != tt.wantTarget {
				t.Fatalf("target = %q, want %q", got.Target, tt.wantTarget)
			}
			if got.From != tt.wantFrom {
				t.Fatalf("from = %q, want %q", got.From, tt.wantFrom)
			}
		})
	}
}
