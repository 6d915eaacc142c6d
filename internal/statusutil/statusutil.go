// Package statusutil normalizes user-entered status and priority values
// before they hit the API. Input arrives from CLI flags and TUI form fields,
// so spacing, case and separator variants are all accepted.
package statusutil

import (
	"fmt"
	"strings"

	"taskvortex/internal/model"
)

func canon(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// NormalizeTaskStatus maps loose input ("in progress", "In-Progress") to the
// wire value. Empty input stays empty so the server applies its default.
func NormalizeTaskStatus(s string) (model.TaskStatus, error) {
	switch canon(s) {
	case "":
		return "", nil
	case "PENDING", "TODO":
		return model.TaskPending, nil
	case "IN_PROGRESS", "DOING":
		return model.TaskInProgress, nil
	case "REVIEW", "IN_REVIEW":
		return model.TaskReview, nil
	case "DONE", "COMPLETED":
		return model.TaskDone, nil
	}
	return "", fmt.Errorf("invalid task status: %q", s)
}

func NormalizeTaskPriority(s string) (model.TaskPriority, error) {
	switch canon(s) {
	case "":
		return "", nil
	case "LOW":
		return model.PriorityLow, nil
	case "MEDIUM", "MED":
		return model.PriorityMedium, nil
	case "HIGH":
		return model.PriorityHigh, nil
	}
	return "", fmt.Errorf("invalid task priority: %q", s)
}

func NormalizeProjectStatus(s string) (model.ProjectStatus, error) {
	switch canon(s) {
	case "":
		return "", nil
	case "ACTIVE":
		return model.ProjectActive, nil
	case "ARCHIVED":
		return model.ProjectArchived, nil
	}
	return "", fmt.Errorf("invalid project status: %q", s)
}

// IsEndState reports whether a task status needs no further work.
func IsEndState(s model.TaskStatus) bool {
	return s == model.TaskDone
}
