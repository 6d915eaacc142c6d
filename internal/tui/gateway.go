package tui

import (
	"context"

	"taskvortex/internal/api"
	"taskvortex/internal/model"
)

// Gateway is the slice of the HTTP client the TUI uses. Tests swap in a fake;
// production passes *api.Client.
type Gateway interface {
	Login(ctx context.Context, creds api.Credentials) (model.LoginResponse, error)

	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, req api.CreateUserRequest) (model.User, error)

	ListDepartments(ctx context.Context) ([]model.Department, error)
	CreateDepartment(ctx context.Context, name string) (model.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListProjects(ctx context.Context) ([]model.Project, error)
	ListProjectsByManager(ctx context.Context, managerID int64) ([]model.Project, error)
	CreateProject(ctx context.Context, p api.ProjectPayload) (model.Project, error)
	UpdateProjectStatus(ctx context.Context, id int64, status model.ProjectStatus) (model.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	ListTasks(ctx context.Context) ([]model.Task, error)
	ListTasksByManager(ctx context.Context, managerID int64) ([]model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	CreateTask(ctx context.Context, payload api.TaskPayload, files []api.File) (model.Task, error)
	UpdateTask(ctx context.Context, id int64, payload api.TaskPayload, files []api.File) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	TaskHistory(ctx context.Context, id int64) ([]model.TaskHistory, error)
	DeleteAttachment(ctx context.Context, taskID int64, filename, userEmail string) error
}
