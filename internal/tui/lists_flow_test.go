package tui

import (
	"errors"
	"strings"
	"testing"

	"taskvortex/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func someUsers() []model.User {
	return []model.User{
		{ID: 1, FirstName: "Alice", LastName: "Johnson", Email: "alice@vortex.io", Role: model.RoleAdmin, Department: "Engineering"},
		{ID: 2, FirstName: "Bob", LastName: "Stone", Email: "bob@vortex.io", Role: model.RoleEmployee, Department: "Sales"},
		{ID: 3, FirstName: "Alicia", LastName: "Keys", Email: "alicia@vortex.io", Role: model.RoleManager, Department: "Engineering"},
	}
}

func TestUsersScreen_SearchFiltersRows(t *testing.T) {
	gw := &fakeGateway{users: someUsers()}
	m := newTestModel(t, gw, model.RoleAdmin)

	m, cmd := key(t, m, "2")
	m = feed(t, m, cmd)
	if got := len(m.users.PageItems()); got != 3 {
		t.Fatalf("expected 3 users loaded, got %d", got)
	}

	m, _ = key(t, m, "/")
	if !m.searching {
		t.Fatalf("expected search mode after /")
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("alic")})

	rows := m.users.PageItems()
	if len(rows) != 2 {
		t.Fatalf("search %q: expected 2 rows, got %d", "alic", len(rows))
	}
	for _, u := range rows {
		if u.FirstName != "Alice" && u.FirstName != "Alicia" {
			t.Fatalf("unexpected row %q", u.FullName())
		}
	}

	// Esc clears the term and leaves search mode.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching || len(m.users.PageItems()) != 3 {
		t.Fatalf("esc should clear search, searching=%v rows=%d", m.searching, len(m.users.PageItems()))
	}
}

func TestUsersScreen_RoleFilterCycles(t *testing.T) {
	gw := &fakeGateway{users: someUsers()}
	m := newTestModel(t, gw, model.RoleAdmin)
	m, cmd := key(t, m, "2")
	m = feed(t, m, cmd)

	m, _ = key(t, m, "r") // ADMIN
	if got := len(m.users.Filtered()); got != 1 {
		t.Fatalf("ADMIN filter: expected 1 row, got %d", got)
	}
	m, _ = key(t, m, "r") // MANAGER
	m, _ = key(t, m, "r") // EMPLOYEE
	m, _ = key(t, m, "r") // back to sentinel
	if got := m.users.FilterValue("role"); got != sentinelAllRoles {
		t.Fatalf("cycle should return to sentinel, got %q", got)
	}
	if got := len(m.users.Filtered()); got != 3 {
		t.Fatalf("sentinel should show all rows, got %d", got)
	}
}

func TestStaleLoadResult_IsDropped(t *testing.T) {
	gw := &fakeGateway{users: someUsers()}
	m := newTestModel(t, gw, model.RoleAdmin)

	m, cmd1 := key(t, m, "2")
	msgs1 := collectMsgs(cmd1)

	// A second load supersedes the first before its reply lands.
	m, cmd2 := key(t, m, "2")
	msgs2 := collectMsgs(cmd2)

	m, _ = step(t, m, msgs1[0])
	if got := len(m.users.Items()); got != 0 {
		t.Fatalf("stale reply must be dropped, got %d rows", got)
	}

	m, _ = step(t, m, msgs2[0])
	if got := len(m.users.Items()); got != 3 {
		t.Fatalf("current reply must apply, got %d rows", got)
	}
}

func TestEmployee_CannotNavigateToAdminScreens(t *testing.T) {
	m := newTestModel(t, &fakeGateway{}, model.RoleEmployee)

	m, cmd := key(t, m, "2")
	if m.view != viewDashboard || cmd != nil {
		t.Fatalf("employee must not reach users screen, got %s", viewToString(m.view))
	}
	m, cmd = key(t, m, "3")
	if m.view != viewDashboard || cmd != nil {
		t.Fatalf("employee must not reach departments screen, got %s", viewToString(m.view))
	}
	m, cmd = key(t, m, "4")
	if m.view != viewDashboard || cmd != nil {
		t.Fatalf("employee must not reach projects screen, got %s", viewToString(m.view))
	}

	m, cmd = key(t, m, "5")
	if m.view != viewTasks {
		t.Fatalf("employee should reach tasks, got %s", viewToString(m.view))
	}
	if cmd == nil {
		t.Fatalf("tasks navigation should trigger a load")
	}
}

func TestTasksScreen_EnterOpensDetail(t *testing.T) {
	task := model.Task{ID: 9, Title: "Write report", Status: model.TaskPending, Priority: model.PriorityHigh,
		Attachments: []string{"draft.pdf"}}
	gw := &fakeGateway{
		tasks:    []model.Task{task},
		taskByID: map[int64]model.Task{9: task},
	}
	m := newTestModel(t, gw, model.RoleAdmin)

	m, cmd := key(t, m, "5")
	m = feed(t, m, cmd)

	m, cmd = key(t, m, "enter")
	if m.view != viewTaskDetail {
		t.Fatalf("enter should open the task, got %s", viewToString(m.view))
	}
	m = feed(t, m, cmd)
	if m.openTask.ID != 9 || m.openTask.Title != "Write report" {
		t.Fatalf("unexpected open task: %+v", m.openTask)
	}
}

func TestTaskDetail_HistoryFailureLogsAndKeepsView(t *testing.T) {
	task := model.Task{ID: 9, Title: "Write report", Status: model.TaskPending}
	gw := &fakeGateway{
		tasks:          []model.Task{task},
		taskByID:       map[int64]model.Task{9: task},
		taskHistoryErr: errors.New("history backend down"),
	}
	m := newTestModel(t, gw, model.RoleAdmin)
	lg := &captureLogger{}
	m.log = lg

	m, cmd := key(t, m, "5")
	m = feed(t, m, cmd)
	m, cmd = key(t, m, "enter")
	m = feed(t, m, cmd)

	if m.view != viewTaskDetail {
		t.Fatalf("detail must stay usable without history, got %s", viewToString(m.view))
	}
	if m.openTask.ID != 9 {
		t.Fatalf("task should load despite the history failure: %+v", m.openTask)
	}
	if len(m.taskHistory) != 0 {
		t.Fatalf("failed history must be empty, got %+v", m.taskHistory)
	}
	if len(lg.warns) == 0 || !strings.Contains(lg.warns[0], "task history") {
		t.Fatalf("history failure must reach the diagnostic log, got %+v", lg.warns)
	}
}

func TestTaskDetail_DescriptionRenderPersistsAcrossFrames(t *testing.T) {
	task := model.Task{ID: 9, Title: "Write report", Description: "# Outline\n\nDraft the intro."}
	gw := &fakeGateway{
		tasks:    []model.Task{task},
		taskByID: map[int64]model.Task{9: task},
	}
	m := newTestModel(t, gw, model.RoleAdmin)

	m, cmd := key(t, m, "5")
	m = feed(t, m, cmd)
	m, cmd = key(t, m, "enter")
	m = feed(t, m, cmd)

	if !strings.Contains(m.descRender, "Outline") {
		t.Fatalf("description must be rendered when the detail loads, got %q", m.descRender)
	}

	// View must not be needed to populate the cache, and a resize re-renders
	// at the new width instead of clearing it.
	_ = m.View()
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !strings.Contains(m.descRender, "Outline") {
		t.Fatalf("resize must re-render the description, not clear it: %q", m.descRender)
	}
}
