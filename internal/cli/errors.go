package cli

import "fmt"

type notLoggedInError struct{}

func (notLoggedInError) Error() string {
	return "not logged in: run `taskvortex login` first"
}

func errNotLoggedIn() error {
	return notLoggedInError{}
}

type roleDeniedError struct {
	action string
	role   string
}

func (e roleDeniedError) Error() string {
	return fmt.Sprintf("permission denied: role %s cannot %s", e.role, e.action)
}

func errRoleDenied(action, role string) error {
	return roleDeniedError{action: action, role: role}
}

type dateOrderError struct{}

func (dateOrderError) Error() string {
	return "End Date cannot be before Start Date"
}

func errEndBeforeStart() error {
	return dateOrderError{}
}
