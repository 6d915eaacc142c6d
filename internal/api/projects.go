package api

import (
	"context"
	"fmt"
	"net/http"

	"taskvortex/internal/model"
)

type ProjectPayload struct {
	Name        string  `json:"name"`
	Key         string  `json:"key,omitempty"`
	Description string  `json:"description,omitempty"`
	ManagerID   int64   `json:"managerId,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	MemberIDs   []int64 `json:"memberIds,omitempty"`
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	if err := c.get(ctx, "/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjectsByManager scopes the list so one manager cannot see another's
// projects.
func (c *Client) ListProjectsByManager(ctx context.Context, managerID int64) ([]model.Project, error) {
	var out []model.Project
	if err := c.get(ctx, fmt.Sprintf("/projects/manager/%d", managerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id int64) (model.Project, error) {
	var out model.Project
	if err := c.get(ctx, fmt.Sprintf("/projects/%d", id), &out); err != nil {
		return model.Project{}, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, p ProjectPayload) (model.Project, error) {
	var out model.Project
	if err := c.post(ctx, "/projects", p, &out); err != nil {
		return model.Project{}, err
	}
	return out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, p ProjectPayload) (model.Project, error) {
	var out model.Project
	if err := c.put(ctx, fmt.Sprintf("/projects/%d", id), p, &out); err != nil {
		return model.Project{}, err
	}
	return out, nil
}

// UpdateProjectStatus archives or restores a project. The status rides as a
// query parameter with an empty body, matching the API's PATCH convention.
func (c *Client) UpdateProjectStatus(ctx context.Context, id int64, status model.ProjectStatus) (model.Project, error) {
	var out model.Project
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("status", string(status)).
		SetResult(&out).
		Execute(http.MethodPatch, fmt.Sprintf("/projects/%d/status", id))
	if err != nil {
		return model.Project{}, fmt.Errorf("PATCH /projects/%d/status: %w", id, err)
	}
	if resp.IsError() {
		return model.Project{}, statusError(resp)
	}
	return out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d", id))
}
