// Package access evaluates role-gated entry to views. It is pure decision
// logic over session state; the UI layer performs the actual navigation.
package access

import "github.com/fooddash/client-go/internal/core/domain"

// Action is the outcome category of an access evaluation.
type Action int

const (
	// Grant allows the view to render.
	Grant Action = iota
	// Wait means the session is still initializing: render a loading
	// indicator, do not redirect.
	Wait
	// Redirect sends the user elsewhere, to Target.
	Redirect
)

// LoginPath is the destination for unauthenticated access attempts.
const LoginPath = "/login"

// Decision is the result of evaluating a view's role requirements against
// the current session.
type Decision struct {
	Action Action
	// Target is the redirect destination when Action is Redirect.
	Target string
	// From preserves the originally requested path on a login redirect so
	// the login flow can return the user there.
	From string
}

// Evaluate checks whether a session with the given status and role may enter
// a view restricted to allowed roles. An empty allowed set admits any
// authenticated role. Unauthenticated users are sent to the login view with
// the requested path preserved; authenticated users with a disallowed role
// are sent to their own role's home rather than an error page.
func Evaluate(status domain.SessionStatus, role domain.Role, allowed []domain.Role, requested string) Decision {
	switch status {
	case domain.StatusInitializing:
		return Decision{Action: Wait}
	case domain.StatusAuthenticated:
	default:
		return Decision{Action: Redirect, Target: LoginPath, From: requested}
	}

	if len(allowed) == 0 {
		return Decision{Action: Grant}
	}
	for _, r := range allowed {
		if r == role {
			return Decision{Action: Grant}
		}
	}
	return Decision{Action: Redirect, Target: role.Home()}
}
