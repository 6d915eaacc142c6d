package cli

import (
	"strconv"

	"taskvortex/internal/format"
	"taskvortex/internal/model"
)

// List wrappers give each collection a JSON envelope and a tabular shape so
// --format table works on the same value.

type userList struct {
	Data []model.User `json:"data"`
}

func (l userList) Table() format.Table {
	t := format.Table{Header: []string{"ID", "NAME", "EMAIL", "ROLE", "DEPARTMENT"}}
	for _, u := range l.Data {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(u.ID, 10), u.FullName(), u.Email, string(u.Role), u.Department,
		})
	}
	return t
}

type departmentList struct {
	Data []model.Department `json:"data"`
}

func (l departmentList) Table() format.Table {
	t := format.Table{Header: []string{"ID", "NAME"}}
	for _, d := range l.Data {
		t.Rows = append(t.Rows, []string{strconv.FormatInt(d.ID, 10), d.Name})
	}
	return t
}

type projectList struct {
	Data []model.Project `json:"data"`
}

func (l projectList) Table() format.Table {
	t := format.Table{Header: []string{"ID", "NAME", "MANAGER", "STATUS", "START", "END"}}
	for _, p := range l.Data {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(p.ID, 10), p.Name, p.ManagerName, string(p.Status), p.StartDate, p.EndDate,
		})
	}
	return t
}

type taskList struct {
	Data []model.Task `json:"data"`
}

func (l taskList) Table() format.Table {
	t := format.Table{Header: []string{"ID", "TITLE", "STATUS", "PRIORITY", "DUE"}}
	for _, task := range l.Data {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(task.ID, 10), task.Title, string(task.Status), string(task.Priority), task.DueDate,
		})
	}
	return t
}
