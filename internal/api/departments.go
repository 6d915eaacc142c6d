package api

import (
	"context"
	"fmt"

	"taskvortex/internal/model"
)

func (c *Client) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var out []model.Department
	if err := c.get(ctx, "/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDepartment(ctx context.Context, name string) (model.Department, error) {
	var out model.Department
	body := model.Department{Name: name}
	if err := c.post(ctx, "/departments", body, &out); err != nil {
		return model.Department{}, err
	}
	return out, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/departments/%d", id))
}
