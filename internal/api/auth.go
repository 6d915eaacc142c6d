package api

import (
	"context"
	"fmt"
	"strings"

	"taskvortex/internal/model"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and returns the session payload. A 2xx response
// without a token is rejected: downstream session state must never hold a
// half-formed login.
func (c *Client) Login(ctx context.Context, creds Credentials) (model.LoginResponse, error) {
	var out model.LoginResponse
	if err := c.post(ctx, "/auth/login", creds, &out); err != nil {
		return model.LoginResponse{}, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return model.LoginResponse{}, fmt.Errorf("%w: login response missing token", ErrMalformedResponse)
	}
	if model.ParseRole(string(out.Role)) == model.RoleNone {
		return model.LoginResponse{}, fmt.Errorf("%w: login response has unknown role %q", ErrMalformedResponse, out.Role)
	}
	return out, nil
}
