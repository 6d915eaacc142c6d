package tui

import (
	"context"

	"taskvortex/internal/model"
	"taskvortex/internal/notify"
	"taskvortex/internal/perm"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// The confirm modal, when present, owns the keyboard.
	if _, ok := m.center.Active(); ok {
		return m.updateConfirmKey(msg)
	}

	switch m.view {
	case viewLogin:
		return m.updateLoginKey(msg)
	case viewUserForm, viewDepartmentForm, viewProjectForm, viewTaskForm:
		return m.updateFormKey(msg)
	case viewTaskDetail:
		return m.updateTaskDetailKey(msg)
	case viewDashboard:
		return m.updateDashboardKey(msg)
	default:
		return m.updateListKey(msg)
	}
}

func (m appModel) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusCancel {
			m.center.Decline()
			m.confirmFocus = confirmFocusConfirm
			return m, nil
		}
		m.center.Confirm()
		cmd := m.confirmSlot.cmd
		m.confirmSlot.cmd = nil
		m.confirmFocus = confirmFocusConfirm
		return m, cmd
	case "esc", "ctrl+g":
		m.center.Decline()
		m.confirmFocus = confirmFocusConfirm
		return m, nil
	}
	return m, nil
}

func (m appModel) updateLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.loginEmail.Focus()
			m.loginPassword.Blur()
		} else {
			m.loginPassword.Focus()
			m.loginEmail.Blur()
		}
		return m, nil
	case "enter":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.loginPassword.Focus()
			m.loginEmail.Blur()
			return m, nil
		}
		if !m.loginFlow.Begin() {
			return m, nil
		}
		return m, m.loginCmd(m.loginEmail.Value(), m.loginPassword.Value())
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.loginEmail, cmd = m.loginEmail.Update(msg)
	} else {
		m.loginPassword, cmd = m.loginPassword.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		return m, m.loadDashboard()
	}
	if v, cmd, ok := m.navKey(msg.String()); ok {
		m.view = v
		m.cursor = 0
		return m, cmd
	}
	if msg.String() == "ctrl+l" {
		m.logout()
		return m, nil
	}
	return m, nil
}

// navKey maps number keys to screens, honoring role gates. Screens a role
// cannot see are simply not navigable.
func (m *appModel) navKey(key string) (view, tea.Cmd, bool) {
	switch key {
	case "1":
		return viewDashboard, m.loadDashboard(), true
	case "2":
		if !perm.CanManageUsers(m.sess.Current().Role) {
			return 0, nil, false
		}
		return viewUsers, m.loadUsers(), true
	case "3":
		if !perm.CanManageDepartments(m.sess.Current().Role) {
			return 0, nil, false
		}
		return viewDepartments, m.loadDepartments(), true
	case "4":
		if !perm.CanManageProjects(m.sess.Current().Role) {
			return 0, nil, false
		}
		return viewProjects, m.loadProjects(), true
	case "5":
		return viewTasks, m.loadTasks(), true
	}
	return 0, nil, false
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+l":
		m.logout()
		return m, nil
	case "esc":
		m.view = viewDashboard
		return m, m.loadDashboard()
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil
	case "up", "k":
		m.cursor--
		m.clampCursor()
		return m, nil
	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil
	case "left", "h":
		m.pagePrev()
		m.clampCursor()
		return m, nil
	case "right", "l":
		m.pageNext()
		m.clampCursor()
		return m, nil
	case "c":
		m.resetActiveFilters()
		m.searchInput.SetValue("")
		m.clampCursor()
		return m, nil
	}

	if v, cmd, ok := m.navKey(msg.String()); ok {
		m.view = v
		m.cursor = 0
		return m, cmd
	}

	switch m.view {
	case viewUsers:
		return m.updateUsersKey(msg)
	case viewDepartments:
		return m.updateDepartmentsKey(msg)
	case viewProjects:
		return m.updateProjectsKey(msg)
	case viewTasks:
		return m.updateTasksKey(msg)
	}
	return m, nil
}

func (m appModel) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applySearch("")
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applySearch(m.searchInput.Value())
	m.clampCursor()
	return m, cmd
}

func (m appModel) updateUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.form = newUserForm()
		m.returnView = viewUsers
		m.view = viewUserForm
		m.formFlow.Reset()
		return m, nil
	case "r":
		m.users.SetFilter("role", cycleValue(m.users.FilterValue("role"), sentinelAllRoles, []string{
			string(model.RoleAdmin), string(model.RoleManager), string(model.RoleEmployee),
		}))
		m.clampCursor()
		return m, nil
	case "d":
		m.users.SetFilter("department", cycleValue(m.users.FilterValue("department"), sentinelAllDepartments, distinctDepartments(m.users.Items())))
		m.clampCursor()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateDepartmentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.form = newDepartmentForm()
		m.returnView = viewDepartments
		m.view = viewDepartmentForm
		m.formFlow.Reset()
		return m, nil
	case "x":
		if dep, ok := selected(m.departments, m.cursor); ok {
			m.submitDepartmentDelete(dep)
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.form = newProjectForm()
		m.returnView = viewProjects
		m.view = viewProjectForm
		m.formFlow.Reset()
		return m, nil
	case "s":
		m.projects.SetFilter("status", cycleValue(m.projects.FilterValue("status"), sentinelAllStatuses, []string{
			string(model.ProjectActive), string(model.ProjectArchived),
		}))
		m.clampCursor()
		return m, nil
	case "v":
		if p, ok := selected(m.projects, m.cursor); ok {
			m.submitProjectStatusToggle(p)
		}
		return m, nil
	case "x":
		if p, ok := selected(m.projects, m.cursor); ok {
			m.submitProjectDelete(p)
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		if !perm.CanManageTasks(m.sess.Current().Role) {
			return m, nil
		}
		m.form = newTaskForm(nil)
		m.returnView = viewTasks
		m.view = viewTaskForm
		m.formFlow.Reset()
		return m, nil
	case "s":
		m.tasks.SetFilter("status", cycleValue(m.tasks.FilterValue("status"), sentinelAllStatuses, []string{
			string(model.TaskPending), string(model.TaskInProgress), string(model.TaskReview), string(model.TaskDone),
		}))
		m.clampCursor()
		return m, nil
	case "p":
		m.tasks.SetFilter("priority", cycleValue(m.tasks.FilterValue("priority"), sentinelAllPriorities, []string{
			string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh),
		}))
		m.clampCursor()
		return m, nil
	case "x":
		if t, ok := selected(m.tasks, m.cursor); ok {
			m.submitTaskDelete(t)
		}
		return m, nil
	case "enter":
		if t, ok := selected(m.tasks, m.cursor); ok {
			m.openTaskID = t.ID
			m.view = viewTaskDetail
			return m, m.loadTaskDetail(t.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateTaskDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = viewTasks
		return m, m.loadTasks()
	case "e":
		task := m.openTask
		m.form = newTaskForm(&task)
		m.returnView = viewTaskDetail
		m.view = viewTaskForm
		m.formFlow.Reset()
		return m, nil
	case "n":
		if len(m.openTask.Attachments) > 0 {
			m.attachCursor = (m.attachCursor + 1) % len(m.openTask.Attachments)
		}
		return m, nil
	case "x":
		if len(m.openTask.Attachments) > 0 {
			m.submitAttachmentDelete(m.openTask.Attachments[m.attachCursor])
		}
		return m, nil
	case "r":
		return m, m.loadTaskDetail(m.openTaskID)
	}
	return m, nil
}

func (m appModel) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.view = m.returnView
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form = nil
		m.view = m.returnView
		return m, nil
	case "tab", "down":
		next := m.form.focus + 1
		if next >= len(m.form.fields) {
			next = 0
		}
		m.form.setFocus(next)
		return m, nil
	case "shift+tab", "up":
		prev := m.form.focus - 1
		if prev < 0 {
			prev = len(m.form.fields) - 1
		}
		m.form.setFocus(prev)
		return m, nil
	case "enter":
		if m.form.focus < len(m.form.fields)-1 {
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
		return m.submitForm()
	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.fields[m.form.focus].input, cmd = m.form.fields[m.form.focus].input.Update(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		return m, nil
	}
	if f.datesInverted() {
		return m, m.toast(notify.LevelError, "End Date cannot be before Start Date")
	}
	if !m.formFlow.Begin() {
		return m, nil
	}

	gw := m.gw
	switch f.kind {
	case "department":
		name := f.value(0)
		return m, m.mutationCmd("department.create", func(ctx context.Context) error {
			_, err := gw.CreateDepartment(ctx, name)
			return err
		})
	case "user":
		req := f.userRequest()
		return m, m.mutationCmd("user.create", func(ctx context.Context) error {
			_, err := gw.CreateUser(ctx, req)
			return err
		})
	case "project":
		payload := f.projectPayload(m.sess.Current().User.ID)
		return m, m.mutationCmd("project.create", func(ctx context.Context) error {
			_, err := gw.CreateProject(ctx, payload)
			return err
		})
	case "task":
		payload, err := f.taskPayload()
		if err != nil {
			m.formFlow.Reset()
			return m, m.toast(notify.LevelError, err.Error())
		}
		if f.taskID > 0 {
			id := f.taskID
			return m, m.mutationCmd("task.update", func(ctx context.Context) error {
				_, err := gw.UpdateTask(ctx, id, payload, nil)
				return err
			})
		}
		return m, m.mutationCmd("task.create", func(ctx context.Context) error {
			_, err := gw.CreateTask(ctx, payload, nil)
			return err
		})
	}
	m.formFlow.Reset()
	return m, nil
}
