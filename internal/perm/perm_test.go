package perm

import (
	"testing"

	"taskvortex/internal/model"
)

func TestRoleGates(t *testing.T) {
	cases := []struct {
		role                                model.Role
		users, departments, projects, tasks bool
		seesAll                             bool
	}{
		{model.RoleAdmin, true, true, true, true, true},
		{model.RoleManager, false, false, true, true, false},
		{model.RoleEmployee, false, false, false, true, false},
		{model.RoleNone, false, false, false, false, false},
	}
	for _, tc := range cases {
		if got := CanManageUsers(tc.role); got != tc.users {
			t.Fatalf("CanManageUsers(%q) = %v, want %v", tc.role, got, tc.users)
		}
		if got := CanManageDepartments(tc.role); got != tc.departments {
			t.Fatalf("CanManageDepartments(%q) = %v, want %v", tc.role, got, tc.departments)
		}
		if got := CanManageProjects(tc.role); got != tc.projects {
			t.Fatalf("CanManageProjects(%q) = %v, want %v", tc.role, got, tc.projects)
		}
		if got := CanManageTasks(tc.role); got != tc.tasks {
			t.Fatalf("CanManageTasks(%q) = %v, want %v", tc.role, got, tc.tasks)
		}
		if got := SeesAllData(tc.role); got != tc.seesAll {
			t.Fatalf("SeesAllData(%q) = %v, want %v", tc.role, got, tc.seesAll)
		}
	}
}
