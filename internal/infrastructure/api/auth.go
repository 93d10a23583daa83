package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

// Login posts credentials to the authentication endpoint and returns the
// decoded envelope. Interpretation of the success flag and access token is
// the session store's job; only transport failures are errors here.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.LoginResult, error) {
	env, _, err := c.call(ctx, http.MethodPost, "/auth/login", "/auth/login", nil, creds, true)
	if err != nil {
		return nil, err
	}

	res := &ports.LoginResult{Success: env.Success, Message: env.Message}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &res.Data); err != nil {
			c.log.Warn().Err(err).Msg("malformed login payload")
		}
	}
	return res, nil
}

// Register creates an account and returns the server's confirmation message.
func (c *Client) Register(ctx context.Context, input ports.RegistrationInput) (string, error) {
	env, _, err := c.call(ctx, http.MethodPost, "/auth/register", "/auth/register", nil, input, true)
	if err != nil {
		return "", err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "registration failed"
		}
		return "", &domain.AuthError{Message: msg}
	}
	return env.Message, nil
}

// UpdateProfile pushes profile changes and returns the server-confirmed
// profile.
func (c *Client) UpdateProfile(ctx context.Context, input ports.ProfileUpdate) (*ports.ProfileData, error) {
	env, code, err := c.call(ctx, http.MethodPut, "/auth/profile", "/auth/profile", nil, input, false)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &domain.APIError{StatusCode: code, Message: env.Message}
	}

	var data ports.ProfileData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, &domain.APIError{StatusCode: code, Message: "malformed profile payload"}
	}
	return &data, nil
}

// ChangePassword submits a password change for the authenticated account.
func (c *Client) ChangePassword(ctx context.Context, input ports.PasswordChangeInput) error {
	env, code, err := c.call(ctx, http.MethodPut, "/auth/change-password", "/auth/change-password", nil, input, false)
	if err != nil {
		return err
	}
	if !env.Success {
		return &domain.APIError{StatusCode: code, Message: env.Message}
	}
	return nil
}
