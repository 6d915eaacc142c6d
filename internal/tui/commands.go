package tui

import (
	"context"
	"time"

	"taskvortex/internal/api"
	"taskvortex/internal/model"
	"taskvortex/internal/notify"
	"taskvortex/internal/perm"

	tea "github.com/charmbracelet/bubbletea"
)

// Async commands. Every load bumps loadSeq and stamps the result so replies
// from an abandoned screen are dropped on arrival.

func (m *appModel) nextSeq() int {
	m.loadSeq++
	return m.loadSeq
}

func (m *appModel) loginCmd(email, password string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		resp, err := gw.Login(context.Background(), api.Credentials{Email: email, Password: password})
		return loginDoneMsg{resp: resp, err: err}
	}
}

func (m *appModel) loadUsers() tea.Cmd {
	seq := m.nextSeq()
	m.loading = true
	gw := m.gw
	return func() tea.Msg {
		users, err := gw.ListUsers(context.Background())
		return usersLoadedMsg{seq: seq, users: users, err: err}
	}
}

func (m *appModel) loadDepartments() tea.Cmd {
	seq := m.nextSeq()
	m.loading = true
	gw := m.gw
	return func() tea.Msg {
		deps, err := gw.ListDepartments(context.Background())
		return departmentsLoadedMsg{seq: seq, departments: deps, err: err}
	}
}

func (m *appModel) loadProjects() tea.Cmd {
	seq := m.nextSeq()
	m.loading = true
	gw := m.gw
	admin := perm.SeesAllData(m.sess.Current().Role)
	uid := m.sess.Current().User.ID
	return func() tea.Msg {
		var projects []model.Project
		var err error
		if admin {
			projects, err = gw.ListProjects(context.Background())
		} else {
			projects, err = gw.ListProjectsByManager(context.Background(), uid)
		}
		return projectsLoadedMsg{seq: seq, projects: projects, err: err}
	}
}

func (m *appModel) loadTasks() tea.Cmd {
	seq := m.nextSeq()
	m.loading = true
	gw := m.gw
	admin := perm.SeesAllData(m.sess.Current().Role)
	uid := m.sess.Current().User.ID
	return func() tea.Msg {
		var tasks []model.Task
		var err error
		if admin {
			tasks, err = gw.ListTasks(context.Background())
		} else {
			tasks, err = gw.ListTasksByManager(context.Background(), uid)
		}
		return tasksLoadedMsg{seq: seq, tasks: tasks, err: err}
	}
}

func (m *appModel) loadTaskDetail(id int64) tea.Cmd {
	seq := m.nextSeq()
	m.loading = true
	gw := m.gw
	log := m.log
	return func() tea.Msg {
		task, err := gw.GetTask(context.Background(), id)
		if err != nil {
			return taskDetailLoadedMsg{seq: seq, err: err}
		}
		history, err := gw.TaskHistory(context.Background(), id)
		if err != nil {
			// The detail page is still useful without its history.
			log.Warn("task history load failed", "task", id, "error", err)
			history = nil
		}
		return taskDetailLoadedMsg{seq: seq, task: task, history: history}
	}
}

func (m *appModel) loadDashboard() tea.Cmd {
	seq := m.nextSeq()
	m.loading = true
	gw := m.gw
	admin := perm.SeesAllData(m.sess.Current().Role)
	uid := m.sess.Current().User.ID
	return func() tea.Msg {
		ctx := context.Background()
		var counts dashboardCounts

		var projects []model.Project
		var tasks []model.Task
		var err error
		if admin {
			projects, err = gw.ListProjects(ctx)
		} else {
			projects, err = gw.ListProjectsByManager(ctx, uid)
		}
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		if admin {
			tasks, err = gw.ListTasks(ctx)
		} else {
			tasks, err = gw.ListTasksByManager(ctx, uid)
		}
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		counts.Projects = len(projects)
		counts.Tasks = len(tasks)

		if admin {
			users, err := gw.ListUsers(ctx)
			if err != nil {
				return dashboardLoadedMsg{seq: seq, err: err}
			}
			deps, err := gw.ListDepartments(ctx)
			if err != nil {
				return dashboardLoadedMsg{seq: seq, err: err}
			}
			counts.Users = len(users)
			counts.Departments = len(deps)
		}
		return dashboardLoadedMsg{seq: seq, counts: counts}
	}
}

func (m *appModel) mutationCmd(kind string, run func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{kind: kind, err: run(context.Background())}
	}
}

// stageCmd schedules the next stage of a timed sequence.
func stageCmd(flowName string, idx, seq int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return stageMsg{flow: flowName, idx: idx, seq: seq} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return stageMsg{flow: flowName, idx: idx, seq: seq}
	})
}

func (m *appModel) expireToastCmd(id string) tea.Cmd {
	ttl := m.center.TTL()
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}

// toast posts a toast and schedules its expiry in one step.
func (m *appModel) toast(level notify.Level, msg string) tea.Cmd {
	id := m.center.Notify(level, msg)
	return m.expireToastCmd(id)
}
