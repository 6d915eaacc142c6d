package tui

import (
	"context"
	"net/http"

	"taskvortex/internal/api"
	"taskvortex/internal/flow"
	"taskvortex/internal/model"
	"taskvortex/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		if m.view == viewTaskDetail {
			m.descRender = renderMarkdown(m.openTask.Description, m.contentWidth()-4)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case loginDoneMsg:
		return m.onLoginDone(msg)

	case stageMsg:
		return m.onStage(msg)

	case usersLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.loadError(msg.err, "Failed to load users")
		}
		m.users.SetItems(msg.users)
		m.clampCursor()
		return m, m.flushNavToasts()

	case departmentsLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.loadError(msg.err, "Failed to load departments")
		}
		m.departments.SetItems(msg.departments)
		m.clampCursor()
		return m, m.flushNavToasts()

	case projectsLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.loadError(msg.err, "Error loading projects")
		}
		m.projects.SetItems(msg.projects)
		m.clampCursor()
		return m, m.flushNavToasts()

	case tasksLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.loadError(msg.err, "Failed to load tasks")
		}
		m.tasks.SetItems(msg.tasks)
		m.clampCursor()
		return m, m.flushNavToasts()

	case taskDetailLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.loadError(msg.err, "Failed to load task")
		}
		m.openTask = msg.task
		m.taskHistory = msg.history
		m.descRender = renderMarkdown(msg.task.Description, m.contentWidth()-4)
		m.attachCursor = 0
		return m, nil

	case dashboardLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.loadError(msg.err, "Server error. Please try again.")
		}
		m.counts = msg.counts
		return m, m.flushNavToasts()

	case mutationDoneMsg:
		return m.onMutationDone(msg)

	case toastExpireMsg:
		m.center.Dismiss(msg.id)
		return m, nil
	}

	return m, nil
}

func (m appModel) onLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loginFlow.Fail(msg.err)
		text := "Server error. Please try again."
		if api.IsStatus(msg.err, http.StatusUnauthorized) || api.IsStatus(msg.err, http.StatusForbidden) {
			text = "Invalid email or password."
		}
		return m, m.toast(notify.LevelError, text)
	}
	if err := m.sess.Establish(msg.resp); err != nil {
		m.loginFlow.Fail(err)
		m.log.Error("persist session", "error", err)
		return m, m.toast(notify.LevelError, "Server error. Please try again.")
	}
	m.loginSeq++
	// Hold the submitting state briefly before the success toast.
	return m, stageCmd("login", 0, m.loginSeq, m.cfg.Stages.LoginHold)
}

func (m appModel) onStage(msg stageMsg) (tea.Model, tea.Cmd) {
	switch msg.flow {
	case "login":
		if msg.seq != m.loginSeq {
			return m, nil
		}
		switch msg.idx {
		case 0:
			cmd := m.toast(notify.LevelSuccess, "Login Successful!")
			return m, tea.Batch(cmd, stageCmd("login", 1, m.loginSeq, m.cfg.Stages.LoginNavigate))
		case 1:
			m.loginFlow.Succeed()
			m.loginPassword.SetValue("")
			m.view = viewDashboard
			return m, m.loadDashboard()
		}

	case "department.create":
		if msg.seq != m.formSeq {
			return m, nil
		}
		switch msg.idx {
		case 0:
			m.formFlow.Succeed()
			cmd := m.toast(notify.LevelSuccess, "Department created successfully!")
			return m, tea.Batch(cmd, stageCmd("department.create", 1, m.formSeq, m.cfg.Stages.CreateNavigate))
		case 1:
			m.form = nil
			m.view = viewDepartments
			return m, m.loadDepartments()
		}
	}
	return m, nil
}

func (m appModel) onMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case "department.create":
		if msg.err != nil {
			m.formFlow.Fail(msg.err)
			text := flow.Messages{
				Conflict: "Department name already exists!",
				Generic:  "Failed to create department.",
			}.For(msg.err)
			return m, m.toast(notify.LevelError, text)
		}
		m.formSeq++
		return m, stageCmd("department.create", 0, m.formSeq, m.cfg.Stages.CreateHold)

	case "user.create":
		if msg.err != nil {
			m.formFlow.Fail(msg.err)
			text := flow.Messages{
				Forbidden: "Access Denied: You do not have permission to add users.",
				Generic:   "Failed to create user.",
			}.For(msg.err)
			return m, m.toast(notify.LevelError, text)
		}
		m.formFlow.Succeed()
		m.form = nil
		m.view = viewUsers
		m.center.NotifyAfterNav(notify.LevelSuccess, "User created successfully!")
		return m, m.loadUsers()

	case "project.create":
		if msg.err != nil {
			m.formFlow.Fail(msg.err)
			text := flow.Messages{
				Forbidden: "Access Denied: You do not have permission to create projects.",
				Generic:   "Failed to create project.",
			}.For(msg.err)
			return m, m.toast(notify.LevelError, text)
		}
		m.formFlow.Succeed()
		m.form = nil
		m.view = viewProjects
		m.center.NotifyAfterNav(notify.LevelSuccess, "Project created successfully!")
		return m, m.loadProjects()

	case "task.create", "task.update":
		if msg.err != nil {
			m.formFlow.Fail(msg.err)
			text := flow.Messages{Generic: "Failed to save task."}.For(msg.err)
			return m, m.toast(notify.LevelError, text)
		}
		m.formFlow.Succeed()
		m.form = nil
		m.view = viewTasks
		if msg.kind == "task.update" {
			m.center.NotifyAfterNav(notify.LevelSuccess, "Task updated successfully!")
		} else {
			m.center.NotifyAfterNav(notify.LevelSuccess, "Task created successfully!")
		}
		return m, m.loadTasks()

	case "department.delete":
		if msg.err != nil {
			return m, m.toast(notify.LevelError, "Delete failed. Department might be in use.")
		}
		cmd := m.toast(notify.LevelSuccess, "Deleted successfully")
		return m, tea.Batch(cmd, m.loadDepartments())

	case "project.delete":
		if msg.err != nil {
			return m, m.toast(notify.LevelError, "Failed to delete project.")
		}
		cmd := m.toast(notify.LevelSuccess, "Deleted successfully")
		return m, tea.Batch(cmd, m.loadProjects())

	case "project.archive":
		if msg.err != nil {
			return m, m.toast(notify.LevelError, "Failed to update project.")
		}
		cmd := m.toast(notify.LevelSuccess, "Project archived.")
		return m, tea.Batch(cmd, m.loadProjects())

	case "project.restore":
		if msg.err != nil {
			return m, m.toast(notify.LevelError, "Failed to update project.")
		}
		cmd := m.toast(notify.LevelSuccess, "Project restored.")
		return m, tea.Batch(cmd, m.loadProjects())

	case "task.delete":
		if msg.err != nil {
			return m, m.toast(notify.LevelError, "Failed to delete task.")
		}
		cmd := m.toast(notify.LevelSuccess, "Deleted successfully")
		return m, tea.Batch(cmd, m.loadTasks())

	case "attachment.delete":
		if msg.err != nil {
			return m, m.toast(notify.LevelError, "Failed to remove attachment.")
		}
		cmd := m.toast(notify.LevelSuccess, "Attachment removed.")
		return m, tea.Batch(cmd, m.loadTaskDetail(m.openTaskID))
	}
	return m, nil
}

// loadError handles a failed fetch. A 401 means the token is dead: wipe the
// session and fall back to the login screen.
func (m *appModel) loadError(err error, fallback string) tea.Cmd {
	m.log.Error("load failed", "view", viewToString(m.view), "error", err)
	if api.IsStatus(err, http.StatusUnauthorized) {
		_ = m.sess.Clear()
		m.view = viewLogin
		m.loginFocus = 0
		m.loginEmail.Focus()
		m.loginPassword.Blur()
		return m.toast(notify.LevelError, "Session expired. Please log in again.")
	}
	return m.toast(notify.LevelError, fallback)
}

func (m *appModel) flushNavToasts() tea.Cmd {
	promoted := m.center.FlushNav()
	if len(promoted) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(promoted))
	for _, t := range promoted {
		cmds = append(cmds, m.expireToastCmd(t.ID))
	}
	return tea.Batch(cmds...)
}

func (m *appModel) logout() {
	_ = m.sess.Clear()
	m.view = viewLogin
	m.form = nil
	m.searching = false
	m.searchInput.SetValue("")
	m.loginEmail.SetValue("")
	m.loginPassword.SetValue("")
	m.loginFocus = 0
	m.loginEmail.Focus()
	m.loginPassword.Blur()
	m.loginFlow.Reset()
}

func (m *appModel) submitDepartmentDelete(dep model.Department) {
	gw := m.gw
	slot := m.confirmSlot
	id := dep.ID
	m.center.Ask("Delete department \""+dep.Name+"\"?", "Delete", func() {
		slot.cmd = m.mutationCmd("department.delete", func(ctx context.Context) error {
			return gw.DeleteDepartment(ctx, id)
		})
	})
}

func (m *appModel) submitProjectDelete(p model.Project) {
	gw := m.gw
	slot := m.confirmSlot
	id := p.ID
	m.center.Ask("Delete project \""+p.Name+"\"?", "Delete", func() {
		slot.cmd = m.mutationCmd("project.delete", func(ctx context.Context) error {
			return gw.DeleteProject(ctx, id)
		})
	})
}

func (m *appModel) submitProjectStatusToggle(p model.Project) {
	gw := m.gw
	slot := m.confirmSlot
	id := p.ID
	if p.Status == model.ProjectArchived {
		m.center.Ask("Restore project \""+p.Name+"\"?", "Restore", func() {
			slot.cmd = m.mutationCmd("project.restore", func(ctx context.Context) error {
				_, err := gw.UpdateProjectStatus(ctx, id, model.ProjectActive)
				return err
			})
		})
		return
	}
	m.center.Ask("Archive project \""+p.Name+"\"?", "Archive", func() {
		slot.cmd = m.mutationCmd("project.archive", func(ctx context.Context) error {
			_, err := gw.UpdateProjectStatus(ctx, id, model.ProjectArchived)
			return err
		})
	})
}

func (m *appModel) submitTaskDelete(t model.Task) {
	gw := m.gw
	slot := m.confirmSlot
	id := t.ID
	m.center.Ask("Delete task \""+t.Title+"\"?", "Delete", func() {
		slot.cmd = m.mutationCmd("task.delete", func(ctx context.Context) error {
			return gw.DeleteTask(ctx, id)
		})
	})
}

func (m *appModel) submitAttachmentDelete(filename string) {
	gw := m.gw
	slot := m.confirmSlot
	id := m.openTaskID
	email := m.sess.Current().User.Email
	m.center.Ask("Remove attachment \""+filename+"\"?", "Remove", func() {
		slot.cmd = m.mutationCmd("attachment.delete", func(ctx context.Context) error {
			return gw.DeleteAttachment(ctx, id, filename, email)
		})
	})
}
