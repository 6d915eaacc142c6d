package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"taskvortex/internal/api"
	"taskvortex/internal/config"
	"taskvortex/internal/model"
	"taskvortex/internal/session"
	"taskvortex/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeGateway is an in-memory Gateway with per-operation error injection and
// call counting.
type fakeGateway struct {
	users       []model.User
	departments []model.Department
	projects    []model.Project
	tasks       []model.Task
	taskByID    map[int64]model.Task
	history     []model.TaskHistory

	loginResp model.LoginResponse
	loginErr  error

	listUsersErr       error
	listDepartmentsErr error
	listProjectsErr    error
	listTasksErr       error

	createUserErr       error
	createDepartmentErr error
	createProjectErr    error
	createTaskErr       error
	deleteDepartmentErr error
	taskHistoryErr      error

	lastTaskPayload api.TaskPayload

	calls map[string]int
}

func (g *fakeGateway) called(name string) {
	if g.calls == nil {
		g.calls = map[string]int{}
	}
	g.calls[name]++
}

func (g *fakeGateway) Login(_ context.Context, _ api.Credentials) (model.LoginResponse, error) {
	g.called("login")
	return g.loginResp, g.loginErr
}

func (g *fakeGateway) ListUsers(_ context.Context) ([]model.User, error) {
	g.called("users.list")
	return g.users, g.listUsersErr
}

func (g *fakeGateway) CreateUser(_ context.Context, _ api.CreateUserRequest) (model.User, error) {
	g.called("users.create")
	return model.User{}, g.createUserErr
}

func (g *fakeGateway) ListDepartments(_ context.Context) ([]model.Department, error) {
	g.called("departments.list")
	return g.departments, g.listDepartmentsErr
}

func (g *fakeGateway) CreateDepartment(_ context.Context, _ string) (model.Department, error) {
	g.called("departments.create")
	return model.Department{}, g.createDepartmentErr
}

func (g *fakeGateway) DeleteDepartment(_ context.Context, _ int64) error {
	g.called("departments.delete")
	return g.deleteDepartmentErr
}

func (g *fakeGateway) ListProjects(_ context.Context) ([]model.Project, error) {
	g.called("projects.list")
	return g.projects, g.listProjectsErr
}

func (g *fakeGateway) ListProjectsByManager(_ context.Context, _ int64) ([]model.Project, error) {
	g.called("projects.listByManager")
	return g.projects, g.listProjectsErr
}

func (g *fakeGateway) CreateProject(_ context.Context, _ api.ProjectPayload) (model.Project, error) {
	g.called("projects.create")
	return model.Project{}, g.createProjectErr
}

func (g *fakeGateway) UpdateProjectStatus(_ context.Context, _ int64, status model.ProjectStatus) (model.Project, error) {
	g.called("projects.status")
	return model.Project{Status: status}, nil
}

func (g *fakeGateway) DeleteProject(_ context.Context, _ int64) error {
	g.called("projects.delete")
	return nil
}

func (g *fakeGateway) ListTasks(_ context.Context) ([]model.Task, error) {
	g.called("tasks.list")
	return g.tasks, g.listTasksErr
}

func (g *fakeGateway) ListTasksByManager(_ context.Context, _ int64) ([]model.Task, error) {
	g.called("tasks.listByManager")
	return g.tasks, g.listTasksErr
}

func (g *fakeGateway) GetTask(_ context.Context, id int64) (model.Task, error) {
	g.called("tasks.get")
	return g.taskByID[id], nil
}

func (g *fakeGateway) CreateTask(_ context.Context, p api.TaskPayload, _ []api.File) (model.Task, error) {
	g.called("tasks.create")
	g.lastTaskPayload = p
	return model.Task{}, g.createTaskErr
}

func (g *fakeGateway) UpdateTask(_ context.Context, _ int64, _ api.TaskPayload, _ []api.File) (model.Task, error) {
	g.called("tasks.update")
	return model.Task{}, g.createTaskErr
}

func (g *fakeGateway) DeleteTask(_ context.Context, _ int64) error {
	g.called("tasks.delete")
	return nil
}

func (g *fakeGateway) TaskHistory(_ context.Context, _ int64) ([]model.TaskHistory, error) {
	g.called("tasks.history")
	return g.history, g.taskHistoryErr
}

func (g *fakeGateway) DeleteAttachment(_ context.Context, _ int64, _, _ string) error {
	g.called("attachments.delete")
	return nil
}

// captureLogger records warning messages so tests can assert that background
// failures reach the diagnostic channel.
type captureLogger struct {
	warns []string
}

func (l *captureLogger) Debug(any, ...any)      {}
func (l *captureLogger) Info(any, ...any)       {}
func (l *captureLogger) Warn(msg any, _ ...any) { l.warns = append(l.warns, fmt.Sprint(msg)) }
func (l *captureLogger) Error(any, ...any)      {}

// newTestModel builds an app over a throwaway session store. RoleNone means
// logged out. Stage delays are zeroed so timed sequences fire immediately and
// the toast TTL is tiny so expiry ticks return fast when executed.
func newTestModel(t *testing.T, gw Gateway, role model.Role) appModel {
	t.Helper()
	kv, err := store.Open(filepath.Join(t.TempDir(), "state.sqlite"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	sess := session.NewStore(kv)
	if role != model.RoleNone {
		if err := sess.Establish(model.LoginResponse{Token: "tok", Role: role, ID: 1, FirstName: "Test", Email: "test@vortex.io"}); err != nil {
			t.Fatalf("establish: %v", err)
		}
	}

	cfg := config.Default()
	cfg.Stages = config.Stages{}
	cfg.ToastTTL = time.Millisecond
	return newAppModel(cfg, gw, sess, nil)
}

func step(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	return mm.(appModel), cmd
}

func key(t *testing.T, m appModel, k string) (appModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+l":
		msg = tea.KeyMsg{Type: tea.KeyCtrlL}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return step(t, m, msg)
}

// collectMsgs executes a command tree and flattens the produced messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed executes a command and routes every produced message back through
// Update, recursively.
func feed(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		var next tea.Cmd
		m, next = step(t, m, msg)
		m = feed(t, m, next)
	}
	return m
}

func hasToast(m appModel, text string) bool {
	for _, toast := range m.center.Toasts() {
		if toast.Message == text {
			return true
		}
	}
	return false
}
