package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
	RoleNone     Role = ""
)

func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	case RoleEmployee:
		return RoleEmployee
	}
	return RoleNone
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Role      Role   `json:"role"`
	// Department is the department name, not a nested object.
	Department string `json:"department,omitempty"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "ACTIVE"
	ProjectArchived ProjectStatus = "ARCHIVED"
)

type Project struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Key            string        `json:"key,omitempty"`
	Description    string        `json:"description,omitempty"`
	Status         ProjectStatus `json:"status"`
	ManagerID      int64         `json:"managerId,omitempty"`
	ManagerName    string        `json:"managerName,omitempty"`
	DepartmentName string        `json:"departmentName,omitempty"`
	StartDate      string        `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate        string        `json:"endDate,omitempty"`   // YYYY-MM-DD
	MemberIDs      []int64       `json:"memberIds,omitempty"`
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

type Task struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Status       TaskStatus   `json:"status"`
	Priority     TaskPriority `json:"priority"`
	ProjectID    int64        `json:"projectId,omitempty"`
	ProjectName  string       `json:"projectName,omitempty"`
	AssigneeID   int64        `json:"assigneeId,omitempty"`
	AssigneeName string       `json:"assigneeName,omitempty"`
	DueDate      string       `json:"dueDate,omitempty"` // YYYY-MM-DD
	ParentTaskID *int64       `json:"parentTask,omitempty"`
	Subtasks     []Task       `json:"subtasks,omitempty"`
	Attachments  []string     `json:"attachments,omitempty"`
}

// DoneSubtasks counts completed subtasks for the "3/5" progress affordance
// in task list rows.
func (t Task) DoneSubtasks() int {
	n := 0
	for _, st := range t.Subtasks {
		if st.Status == TaskDone {
			n++
		}
	}
	return n
}

type TaskHistory struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"taskId"`
	Action    string    `json:"action"`
	ChangedBy string    `json:"changedBy,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LoginResponse is the auth payload the API returns on a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	Role      Role   `json:"role"`
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	JobTitle  string `json:"jobTitle,omitempty"`
}

func (r LoginResponse) User() User {
	return User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		JobTitle:  r.JobTitle,
		Role:      r.Role,
	}
}

// Session is the client-side view of an authenticated user. An empty token
// means unauthenticated; token freshness is never validated locally.
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
	User  User   `json:"user"`
}

func (s Session) Authenticated() bool { return strings.TrimSpace(s.Token) != "" }
