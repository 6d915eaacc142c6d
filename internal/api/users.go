package api

import (
	"context"

	"taskvortex/internal/model"
)

type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	// Department is the department name (the API keys users to departments
	// by name, not id).
	Department string `json:"department"`
	JobTitle   string `json:"jobTitle,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (model.User, error) {
	var out model.User
	if err := c.post(ctx, "/users/add", req, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
