// Package perm centralizes the client-side role gates. The server is the
// authority; these checks only decide what the UI offers, so a stale client
// can never look more capable than it is.
package perm

import "taskvortex/internal/model"

// CanManageUsers reports whether the role may list and create accounts.
func CanManageUsers(r model.Role) bool {
	return r == model.RoleAdmin
}

// CanManageDepartments reports whether the role may create or delete
// departments.
func CanManageDepartments(r model.Role) bool {
	return r == model.RoleAdmin
}

// CanManageProjects reports whether the role may create, archive or delete
// projects. Admins act as managers everywhere.
func CanManageProjects(r model.Role) bool {
	return r == model.RoleAdmin || r == model.RoleManager
}

// CanManageTasks reports whether the role may create or edit tasks. Every
// authenticated role can.
func CanManageTasks(r model.Role) bool {
	return r != model.RoleNone
}

// SeesAllData reports whether lists are global or scoped to the user's own
// projects.
func SeesAllData(r model.Role) bool {
	return r == model.RoleAdmin
}
