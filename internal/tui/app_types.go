package tui

import (
	"taskvortex/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewUsers
	viewDepartments
	viewProjects
	viewTasks
	viewTaskDetail
	viewUserForm
	viewDepartmentForm
	viewProjectForm
	viewTaskForm
)

func viewToString(v view) string {
	switch v {
	case viewLogin:
		return "login"
	case viewDashboard:
		return "dashboard"
	case viewUsers:
		return "users"
	case viewDepartments:
		return "departments"
	case viewProjects:
		return "projects"
	case viewTasks:
		return "tasks"
	case viewTaskDetail:
		return "task"
	case viewUserForm:
		return "user-form"
	case viewDepartmentForm:
		return "department-form"
	case viewProjectForm:
		return "project-form"
	case viewTaskForm:
		return "task-form"
	}
	return "unknown"
}

// confirmSlot carries the command produced by a confirmed request across
// model copies.
type confirmSlot struct {
	cmd tea.Cmd
}

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// loginDoneMsg carries the auth round-trip result.
type loginDoneMsg struct {
	resp model.LoginResponse
	err  error
}

// stageMsg advances a timed mutation sequence. seq guards against stages
// scheduled by an abandoned flow.
type stageMsg struct {
	flow string
	idx  int
	seq  int
}

type usersLoadedMsg struct {
	seq   int
	users []model.User
	err   error
}

type departmentsLoadedMsg struct {
	seq         int
	departments []model.Department
	err         error
}

type projectsLoadedMsg struct {
	seq      int
	projects []model.Project
	err      error
}

type tasksLoadedMsg struct {
	seq   int
	tasks []model.Task
	err   error
}

type taskDetailLoadedMsg struct {
	seq     int
	task    model.Task
	history []model.TaskHistory
	err     error
}

type dashboardLoadedMsg struct {
	seq    int
	counts dashboardCounts
	err    error
}

type mutationDoneMsg struct {
	kind string // "user.create", "department.delete", ...
	err  error
}

type toastExpireMsg struct{ id string }

type dashboardCounts struct {
	Users       int
	Departments int
	Projects    int
	Tasks       int
}
