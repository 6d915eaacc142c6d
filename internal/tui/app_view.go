package tui

import (
	"fmt"
	"strconv"
	"strings"

	"taskvortex/internal/listview"
	"taskvortex/internal/model"
	"taskvortex/internal/perm"
	"taskvortex/internal/statusutil"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.view {
	case viewLogin:
		body = m.viewLogin()
	case viewDashboard:
		body = m.viewDashboard()
	case viewUsers:
		body = m.viewUsers()
	case viewDepartments:
		body = m.viewDepartments()
	case viewProjects:
		body = m.viewProjects()
	case viewTasks:
		body = m.viewTasks()
	case viewTaskDetail:
		body = m.viewTaskDetail()
	case viewUserForm, viewDepartmentForm, viewProjectForm, viewTaskForm:
		body = m.viewForm()
	}

	sections := []string{m.renderHeader(), body}
	if req, ok := m.center.Active(); ok {
		modal := renderConfirmModal(m.contentWidth(), "Confirm", req.Message, req.ConfirmLabel, "Cancel", m.confirmFocus)
		sections = append(sections, modal)
	}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	return strings.Join(sections, "\n\n")
}

func (m *appModel) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m *appModel) renderHeader() string {
	crumb := styleHeading().Render("TaskVortex") + styleMuted().Render(" › "+viewToString(m.view))
	if !m.sess.IsAuthenticated() {
		return crumb
	}
	cur := m.sess.Current()
	who := styleMuted().Render(cur.User.FullName() + " (" + string(cur.Role) + ")")
	gap := m.contentWidth() - lipgloss.Width(crumb) - lipgloss.Width(who)
	if gap < 1 {
		return crumb
	}
	return crumb + strings.Repeat(" ", gap) + who
}

func (m *appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Sign in") + "\n\n")
	b.WriteString("  Email     " + m.loginEmail.View() + "\n")
	b.WriteString("  Password  " + m.loginPassword.View() + "\n\n")
	if m.loginFlow.InFlight() {
		b.WriteString(styleMuted().Render("  Signing in..."))
	} else {
		b.WriteString(styleMuted().Render("  enter: sign in   tab: switch field   ctrl+c: quit"))
	}
	return b.String()
}

func (m *appModel) viewDashboard() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Dashboard") + "\n\n")
	if m.loading {
		b.WriteString(styleMuted().Render("Loading...") + "\n")
	}

	card := func(label string, n int) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Render(fmt.Sprintf("%d\n%s", n, label))
	}
	var cards []string
	if perm.SeesAllData(m.sess.Current().Role) {
		cards = append(cards, card("Users", m.counts.Users), card("Departments", m.counts.Departments))
	}
	cards = append(cards, card("Projects", m.counts.Projects), card("Tasks", m.counts.Tasks))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	b.WriteString("\n\n" + styleMuted().Render(m.navHelp()))
	return b.String()
}

func (m *appModel) navHelp() string {
	parts := []string{"1: dashboard"}
	role := m.sess.Current().Role
	if perm.CanManageUsers(role) {
		parts = append(parts, "2: users", "3: departments")
	}
	if perm.CanManageProjects(role) {
		parts = append(parts, "4: projects")
	}
	parts = append(parts, "5: tasks", "ctrl+l: logout", "q: quit")
	return strings.Join(parts, "   ")
}

// renderList draws a generic table screen: search/filter bar, rows, paging.
func renderList[T any](m *appModel, title string, s *listview.State[T], header []string, row func(T) []string, help string) string {
	var b strings.Builder
	b.WriteString(styleHeading().Render(title) + "\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString("  / " + m.searchInput.View() + "\n")
	}
	if filters := activeFilterSummary(s); filters != "" {
		b.WriteString(styleMuted().Render("  "+filters) + "\n")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(styleMuted().Render("  Loading...") + "\n")
	}

	widths := columnWidths(m.contentWidth(), len(header))
	b.WriteString("  " + renderCells(header, widths, styleMuted()) + "\n")
	items := s.PageItems()
	if len(items) == 0 && !m.loading {
		b.WriteString(styleMuted().Render("  (no results)") + "\n")
	}
	for i, it := range items {
		st := lipgloss.NewStyle()
		prefix := "  "
		if i == m.cursor {
			st = styleSelectedRow()
			prefix = "> "
		}
		b.WriteString(prefix + renderCells(row(it), widths, st) + "\n")
	}

	b.WriteString("\n" + styleMuted().Render(fmt.Sprintf("  Page %d/%d (%d items)", s.Page(), s.TotalPages(), len(s.Filtered()))) + "\n")
	b.WriteString(styleMuted().Render("  " + help))
	return b.String()
}

func activeFilterSummary[T any](s *listview.State[T]) string {
	var parts []string
	for _, name := range s.FilterNames() {
		parts = append(parts, name+": "+s.FilterValue(name))
	}
	return strings.Join(parts, "   ")
}

func columnWidths(total, cols int) []int {
	if cols == 0 {
		return nil
	}
	w := (total - 4) / cols
	if w < 8 {
		w = 8
	}
	if w > 28 {
		w = 28
	}
	out := make([]int, cols)
	for i := range out {
		out[i] = w
	}
	return out
}

func renderCells(cells []string, widths []int, st lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		w := 16
		if i < len(widths) {
			w = widths[i]
		}
		c = ansi.Truncate(c, w-1, "…")
		pad := w - ansi.StringWidth(c)
		if pad < 0 {
			pad = 0
		}
		parts[i] = st.Render(c) + strings.Repeat(" ", pad)
	}
	return strings.TrimRight(strings.Join(parts, ""), " ")
}

func (m *appModel) viewUsers() string {
	return renderList(m, "Users", m.users,
		[]string{"NAME", "EMAIL", "ROLE", "DEPARTMENT"},
		func(u model.User) []string {
			return []string{u.FullName(), u.Email, string(u.Role), u.Department}
		},
		"a: add   r: role   d: department   /: search   c: clear   esc: dashboard")
}

func (m *appModel) viewDepartments() string {
	return renderList(m, "Departments", m.departments,
		[]string{"ID", "NAME"},
		func(d model.Department) []string {
			return []string{strconv.FormatInt(d.ID, 10), d.Name}
		},
		"a: add   x: delete   /: search   esc: dashboard")
}

func (m *appModel) viewProjects() string {
	return renderList(m, "Projects", m.projects,
		[]string{"NAME", "MANAGER", "STATUS", "START", "END"},
		func(p model.Project) []string {
			return []string{p.Name, p.ManagerName, string(p.Status), p.StartDate, p.EndDate}
		},
		"a: add   v: archive/restore   x: delete   s: status   /: search   esc: dashboard")
}

func (m *appModel) viewTasks() string {
	return renderList(m, "Tasks", m.tasks,
		[]string{"TITLE", "PROJECT", "ASSIGNEE", "STATUS", "PRIORITY", "SUBTASKS"},
		func(t model.Task) []string {
			progress := ""
			if n := len(t.Subtasks); n > 0 {
				progress = fmt.Sprintf("%d/%d", t.DoneSubtasks(), n)
			}
			return []string{t.Title, t.ProjectName, t.AssigneeName, string(t.Status), string(t.Priority), progress}
		},
		"enter: open   a: add   x: delete   s: status   p: priority   /: search   esc: dashboard")
}

func (m *appModel) viewTaskDetail() string {
	if m.loading {
		return styleMuted().Render("Loading...")
	}
	t := m.openTask

	var b strings.Builder
	b.WriteString(styleHeading().Render(t.Title) + "\n")
	meta := fmt.Sprintf("%s   %s   %s", t.Status, t.Priority, t.DueDate)
	if t.ProjectName != "" {
		meta += "   " + t.ProjectName
	}
	if t.AssigneeName != "" {
		meta += "   @" + t.AssigneeName
	}
	b.WriteString(styleMuted().Render(meta) + "\n\n")

	b.WriteString(m.descRender + "\n")

	if len(t.Subtasks) > 0 {
		b.WriteString("\n" + styleHeading().Render(fmt.Sprintf("Subtasks (%d/%d done)", t.DoneSubtasks(), len(t.Subtasks))) + "\n")
		for _, st := range t.Subtasks {
			mark := "[ ]"
			if statusutil.IsEndState(st.Status) {
				mark = "[x]"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", mark, st.Title))
		}
	}

	if len(t.Attachments) > 0 {
		b.WriteString("\n" + styleHeading().Render("Attachments") + "\n")
		for i, name := range t.Attachments {
			prefix := "  "
			if i == m.attachCursor {
				prefix = "> "
			}
			b.WriteString(prefix + name + "\n")
		}
	}

	if len(m.taskHistory) > 0 {
		b.WriteString("\n" + styleHeading().Render("History") + "\n")
		for _, h := range m.taskHistory {
			line := h.Timestamp.Format("2006-01-02 15:04") + "  " + h.Action
			if h.ChangedBy != "" {
				line += " by " + h.ChangedBy
			}
			if h.Detail != "" {
				line += ": " + h.Detail
			}
			b.WriteString(styleMuted().Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + styleMuted().Render("e: edit   n: next attachment   x: remove attachment   r: reload   esc: back"))
	return b.String()
}

func (m *appModel) viewForm() string {
	f := m.form
	if f == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleHeading().Render(f.title) + "\n\n")
	for i := range f.fields {
		label := fmt.Sprintf("  %-12s", f.fields[i].label)
		if i == f.focus {
			label = styleSelectedRow().Render(label)
		} else {
			label = styleMuted().Render(label)
		}
		b.WriteString(label + " " + f.fields[i].input.View() + "\n")
	}
	b.WriteString("\n")
	if m.formFlow.InFlight() {
		b.WriteString(styleMuted().Render("  Saving..."))
	} else {
		b.WriteString(styleMuted().Render("  enter: next/submit   ctrl+s: submit   tab: next field   esc: cancel"))
	}
	return b.String()
}
