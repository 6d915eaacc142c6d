package tui

import (
	"strconv"
	"strings"

	"taskvortex/internal/api"
	"taskvortex/internal/model"
	"taskvortex/internal/statusutil"

	"github.com/charmbracelet/bubbles/textinput"
)

type formField struct {
	label string
	input textinput.Model
}

type formState struct {
	kind   string // "user", "department", "project", "task"
	title  string
	fields []formField
	focus  int
	// taskID > 0 means the task form edits an existing task.
	taskID int64
}

func newFormField(label, placeholder, value string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	return formField{label: label, input: in}
}

func (f *formState) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *formState) setFocus(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(f.fields) {
		i = len(f.fields) - 1
	}
	for j := range f.fields {
		if j == i {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
	f.focus = i
}

func newUserForm() *formState {
	f := &formState{
		kind:  "user",
		title: "New user",
		fields: []formField{
			newFormField("First name", "", ""),
			newFormField("Last name", "", ""),
			newFormField("Email", "name@company.com", ""),
			newFormField("Job title", "", ""),
			newFormField("Role", "ADMIN | MANAGER | EMPLOYEE", "EMPLOYEE"),
			newFormField("Department", "", ""),
		},
	}
	f.setFocus(0)
	return f
}

func (f *formState) userRequest() api.CreateUserRequest {
	return api.CreateUserRequest{
		FirstName:  f.value(0),
		LastName:   f.value(1),
		Email:      f.value(2),
		JobTitle:   f.value(3),
		Role:       string(model.ParseRole(f.value(4))),
		Department: f.value(5),
		Password:   defaultUserPassword,
	}
}

// defaultUserPassword is the initial password for admin-created accounts.
const defaultUserPassword = "Task@123"

func newDepartmentForm() *formState {
	f := &formState{
		kind:   "department",
		title:  "New department",
		fields: []formField{newFormField("Name", "", "")},
	}
	f.setFocus(0)
	return f
}

func newProjectForm() *formState {
	f := &formState{
		kind:  "project",
		title: "New project",
		fields: []formField{
			newFormField("Name", "", ""),
			newFormField("Key", "short code", ""),
			newFormField("Description", "", ""),
			newFormField("Start date", "YYYY-MM-DD", ""),
			newFormField("End date", "YYYY-MM-DD", ""),
		},
	}
	f.setFocus(0)
	return f
}

func (f *formState) projectPayload(managerID int64) api.ProjectPayload {
	return api.ProjectPayload{
		Name:        f.value(0),
		Key:         f.value(1),
		Description: f.value(2),
		StartDate:   f.value(3),
		EndDate:     f.value(4),
		ManagerID:   managerID,
	}
}

// datesInverted reports whether both dates are set and the end precedes the
// start. ISO dates compare correctly as strings.
func (f *formState) datesInverted() bool {
	if f.kind != "project" {
		return false
	}
	start, end := f.value(3), f.value(4)
	return start != "" && end != "" && end < start
}

func newTaskForm(task *model.Task) *formState {
	f := &formState{
		kind:  "task",
		title: "New task",
	}
	var t model.Task
	if task != nil {
		t = *task
		f.taskID = t.ID
		f.title = "Edit task"
	}
	projectID := ""
	if t.ProjectID != 0 {
		projectID = strconv.FormatInt(t.ProjectID, 10)
	}
	assigneeID := ""
	if t.AssigneeID != 0 {
		assigneeID = strconv.FormatInt(t.AssigneeID, 10)
	}
	status := string(t.Status)
	if status == "" {
		status = string(model.TaskPending)
	}
	priority := string(t.Priority)
	if priority == "" {
		priority = string(model.PriorityMedium)
	}
	f.fields = []formField{
		newFormField("Title", "", t.Title),
		newFormField("Description", "markdown", t.Description),
		newFormField("Status", "PENDING | IN_PROGRESS | REVIEW | DONE", status),
		newFormField("Priority", "LOW | MEDIUM | HIGH", priority),
		newFormField("Project id", "", projectID),
		newFormField("Assignee id", "", assigneeID),
		newFormField("Due date", "YYYY-MM-DD", t.DueDate),
	}
	f.setFocus(0)
	return f
}

func (f *formState) taskPayload() (api.TaskPayload, error) {
	status, err := statusutil.NormalizeTaskStatus(f.value(2))
	if err != nil {
		return api.TaskPayload{}, err
	}
	priority, err := statusutil.NormalizeTaskPriority(f.value(3))
	if err != nil {
		return api.TaskPayload{}, err
	}
	projectID, _ := strconv.ParseInt(f.value(4), 10, 64)
	assigneeID, _ := strconv.ParseInt(f.value(5), 10, 64)
	return api.TaskPayload{
		Title:       f.value(0),
		Description: f.value(1),
		Status:      string(status),
		Priority:    string(priority),
		ProjectID:   projectID,
		AssigneeID:  assigneeID,
		DueDate:     f.value(6),
	}, nil
}
