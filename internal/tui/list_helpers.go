package tui

import (
	"sort"

	"taskvortex/internal/listview"
	"taskvortex/internal/model"
)

// selected returns the row under the cursor on the current page.
func selected[T any](s *listview.State[T], cursor int) (T, bool) {
	items := s.PageItems()
	if cursor < 0 || cursor >= len(items) {
		var zero T
		return zero, false
	}
	return items[cursor], true
}

// cycleValue steps through sentinel -> values... -> sentinel.
func cycleValue(current, sentinel string, values []string) string {
	if len(values) == 0 {
		return sentinel
	}
	if current == sentinel {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return sentinel
		}
	}
	return sentinel
}

func distinctDepartments(users []model.User) []string {
	seen := map[string]bool{}
	var out []string
	for _, u := range users {
		if u.Department == "" || seen[u.Department] {
			continue
		}
		seen[u.Department] = true
		out = append(out, u.Department)
	}
	sort.Strings(out)
	return out
}

func (m *appModel) applySearch(term string) {
	switch m.view {
	case viewUsers:
		m.users.SetSearch(term)
	case viewDepartments:
		m.departments.SetSearch(term)
	case viewProjects:
		m.projects.SetSearch(term)
	case viewTasks:
		m.tasks.SetSearch(term)
	}
}

func (m *appModel) pagePrev() {
	switch m.view {
	case viewUsers:
		m.users.PrevPage()
	case viewDepartments:
		m.departments.PrevPage()
	case viewProjects:
		m.projects.PrevPage()
	case viewTasks:
		m.tasks.PrevPage()
	}
}

func (m *appModel) pageNext() {
	switch m.view {
	case viewUsers:
		m.users.NextPage()
	case viewDepartments:
		m.departments.NextPage()
	case viewProjects:
		m.projects.NextPage()
	case viewTasks:
		m.tasks.NextPage()
	}
}

func (m *appModel) resetActiveFilters() {
	switch m.view {
	case viewUsers:
		m.users.ResetFilters()
	case viewDepartments:
		m.departments.ResetFilters()
	case viewProjects:
		m.projects.ResetFilters()
	case viewTasks:
		m.tasks.ResetFilters()
	}
}
