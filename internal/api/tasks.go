package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"taskvortex/internal/model"
)

type TaskPayload struct {
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Status       string  `json:"status,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	ProjectID    int64   `json:"projectId,omitempty"`
	AssigneeID   int64   `json:"assigneeId,omitempty"`
	DueDate      string  `json:"dueDate,omitempty"`
	ParentTaskID *int64  `json:"parentTask,omitempty"`
	Subtasks     []int64 `json:"subtasks,omitempty"`
}

// File is one attachment part of a multipart task submission.
type File struct {
	Name   string
	Reader io.Reader
}

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var out []model.Task
	if err := c.get(ctx, "/tasks", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTasksByManager returns root tasks under projects managed by the given
// user.
func (c *Client) ListTasksByManager(ctx context.Context, managerID int64) ([]model.Task, error) {
	var out []model.Task
	if err := c.get(ctx, fmt.Sprintf("/tasks/manager/%d", managerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTask(ctx context.Context, id int64) (model.Task, error) {
	var out model.Task
	if err := c.get(ctx, fmt.Sprintf("/tasks/%d", id), &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}

// CreateTask submits multipart form data: a JSON-encoded "task" part plus
// zero or more "files" parts.
func (c *Client) CreateTask(ctx context.Context, payload TaskPayload, files []File) (model.Task, error) {
	return c.submitTask(ctx, http.MethodPost, "/tasks", payload, files)
}

func (c *Client) UpdateTask(ctx context.Context, id int64, payload TaskPayload, files []File) (model.Task, error) {
	return c.submitTask(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), payload, files)
}

func (c *Client) submitTask(ctx context.Context, method, path string, payload TaskPayload, files []File) (model.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return model.Task{}, fmt.Errorf("encode task payload: %w", err)
	}

	var out model.Task
	req := c.rc.R().
		SetContext(ctx).
		SetMultipartField("task", "", "application/json", bytes.NewReader(body)).
		SetResult(&out)
	for _, f := range files {
		req.SetMultipartField("files", f.Name, "application/octet-stream", f.Reader)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return model.Task{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return model.Task{}, statusError(resp)
	}
	return out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/tasks/%d", id))
}

func (c *Client) TaskHistory(ctx context.Context, id int64) ([]model.TaskHistory, error) {
	var out []model.TaskHistory
	if err := c.get(ctx, fmt.Sprintf("/tasks/%d/history", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAttachment removes one file from a task. The acting user's email
// rides as a query parameter per the API contract.
func (c *Client) DeleteAttachment(ctx context.Context, taskID int64, filename, userEmail string) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("userEmail", userEmail).
		Execute(http.MethodDelete, fmt.Sprintf("/tasks/%d/attachments/%s", taskID, filename))
	if err != nil {
		return fmt.Errorf("DELETE attachment %s: %w", filename, err)
	}
	if resp.IsError() {
		return statusError(resp)
	}
	return nil
}
