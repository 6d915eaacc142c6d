package tui

import (
	"taskvortex/internal/config"
	"taskvortex/internal/flow"
	"taskvortex/internal/listview"
	"taskvortex/internal/logger"
	"taskvortex/internal/model"
	"taskvortex/internal/notify"
	"taskvortex/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	sentinelAllRoles       = "All Roles"
	sentinelAllDepartments = "All Departments"
	sentinelAllStatuses    = "All Statuses"
	sentinelAllPriorities  = "All Priorities"
)

type appModel struct {
	cfg  config.Config
	gw   Gateway
	sess *session.Store
	log  logger.Logger

	width  int
	height int
	// The first WindowSizeMsg is initial sizing, not a user-driven resize.
	seenWindowSize bool

	view       view
	returnView view

	// Login form.
	loginEmail    textinput.Model
	loginPassword textinput.Model
	loginFocus    int
	loginFlow     flow.Controller
	loginSeq      int

	// Collection screens. Each load bumps its seq; results carrying a stale
	// seq are dropped.
	users       *listview.State[model.User]
	departments *listview.State[model.Department]
	projects    *listview.State[model.Project]
	tasks       *listview.State[model.Task]
	loadSeq     int
	loading     bool

	cursor      int
	searchInput textinput.Model
	searching   bool

	counts dashboardCounts

	// Task detail.
	openTaskID   int64
	openTask     model.Task
	taskHistory  []model.TaskHistory
	descRender   string
	attachCursor int

	form     *formState
	formFlow flow.Controller
	formSeq  int

	center *notify.Center
	// confirmSlot is a shared cell the active confirm request's callback
	// writes its follow-up command into. It must be a pointer: the model is
	// copied between updates but the callback closes over the slot.
	confirmSlot  *confirmSlot
	confirmFocus confirmModalFocus

	quitting bool
}

func newAppModel(cfg config.Config, gw Gateway, sess *session.Store, log logger.Logger) appModel {
	if log == nil {
		log = logger.Nop()
	}

	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	search := textinput.New()
	search.Placeholder = "search"

	m := appModel{
		cfg:           cfg,
		gw:            gw,
		sess:          sess,
		log:           log,
		view:          viewLogin,
		loginEmail:    email,
		loginPassword: password,
		searchInput:   search,
		center:        notify.NewCenter(cfg.ToastTTL),
		confirmSlot:   &confirmSlot{},
	}
	m.users = newUserList(cfg.PageSize)
	m.departments = newDepartmentList(cfg.PageSize)
	m.projects = newProjectList(cfg.PageSize)
	m.tasks = newTaskList(cfg.PageSize)

	if sess.IsAuthenticated() {
		m.view = viewDashboard
	}
	return m
}

func newUserList(pageSize int) *listview.State[model.User] {
	return listview.New(pageSize,
		func(u model.User) string {
			return u.FullName() + " " + u.Email + " " + string(u.Role) + " " + u.Department
		},
		listview.WithFilter("role", sentinelAllRoles, func(u model.User, v string) bool {
			return string(u.Role) == v
		}),
		listview.WithFilter("department", sentinelAllDepartments, func(u model.User, v string) bool {
			return u.Department == v
		}),
	)
}

func newDepartmentList(pageSize int) *listview.State[model.Department] {
	return listview.New(pageSize, func(d model.Department) string { return d.Name })
}

func newProjectList(pageSize int) *listview.State[model.Project] {
	return listview.New(pageSize,
		func(p model.Project) string {
			return p.Name + " " + p.Key + " " + p.ManagerName + " " + p.DepartmentName
		},
		listview.WithFilter("status", sentinelAllStatuses, func(p model.Project, v string) bool {
			return string(p.Status) == v
		}),
	)
}

func newTaskList(pageSize int) *listview.State[model.Task] {
	return listview.New(pageSize,
		func(t model.Task) string {
			return t.Title + " " + t.ProjectName + " " + t.AssigneeName + " " + string(t.Status)
		},
		listview.WithFilter("status", sentinelAllStatuses, func(t model.Task, v string) bool {
			return string(t.Status) == v
		}),
		listview.WithFilter("priority", sentinelAllPriorities, func(t model.Task, v string) bool {
			return string(t.Priority) == v
		}),
	)
}

func (m appModel) Init() tea.Cmd {
	if m.view == viewDashboard {
		return m.loadDashboard()
	}
	return textinput.Blink
}

// activeRows reports how many rows the current collection screen shows, for
// cursor clamping.
func (m *appModel) activeRows() int {
	switch m.view {
	case viewUsers:
		return len(m.users.PageItems())
	case viewDepartments:
		return len(m.departments.PageItems())
	case viewProjects:
		return len(m.projects.PageItems())
	case viewTasks:
		return len(m.tasks.PageItems())
	}
	return 0
}

func (m *appModel) clampCursor() {
	rows := m.activeRows()
	if rows == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
