package cli

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"taskvortex/internal/api"
	"taskvortex/internal/model"
	"taskvortex/internal/perm"
	"taskvortex/internal/statusutil"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksHistoryCmd(app))
	cmd.AddCommand(newTasksDetachCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks (managers see only their projects' tasks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}

			var tasks []model.Task
			if perm.SeesAllData(sess.Current().Role) {
				tasks, err = client.ListTasks(cmd.Context())
			} else {
				tasks, err = client.ListTasksByManager(cmd.Context(), sess.Current().User.ID)
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, taskList{Data: tasks})
		},
	}
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task with subtasks and attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			task, err := client.GetTask(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}
}

// taskFlags binds the shared create/update flag set.
func taskFlags(cmd *cobra.Command, p *api.TaskPayload, attach *[]string) {
	cmd.Flags().StringVar(&p.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&p.Description, "description", "", "Description (markdown)")
	cmd.Flags().StringVar(&p.Status, "status", "", "Status (PENDING|IN_PROGRESS|REVIEW|DONE)")
	cmd.Flags().StringVar(&p.Priority, "priority", "", "Priority (LOW|MEDIUM|HIGH)")
	cmd.Flags().Int64Var(&p.ProjectID, "project", 0, "Project id")
	cmd.Flags().Int64Var(&p.AssigneeID, "assignee", 0, "Assignee user id")
	cmd.Flags().StringVar(&p.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(attach, "attach", nil, "File to attach (repeatable)")
}

// normalizeTaskPayload canonicalizes free-form --status and --priority input.
func normalizeTaskPayload(p *api.TaskPayload) error {
	status, err := statusutil.NormalizeTaskStatus(p.Status)
	if err != nil {
		return err
	}
	p.Status = string(status)
	priority, err := statusutil.NormalizeTaskPriority(p.Priority)
	if err != nil {
		return err
	}
	p.Priority = string(priority)
	return nil
}

func openAttachments(paths []string) ([]api.File, func(), error) {
	var files []api.File
	var handles []*os.File
	closeAll := func() {
		for _, h := range handles {
			_ = h.Close()
		}
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		handles = append(handles, f)
		files = append(files, api.File{Name: filepath.Base(p), Reader: f})
	}
	return files, closeAll, nil
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var p api.TaskPayload
	var attach []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			if err := normalizeTaskPayload(&p); err != nil {
				return writeErr(cmd, err)
			}
			files, closeFiles, err := openAttachments(attach)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFiles()
			task, err := client.CreateTask(cmd.Context(), p, files)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	taskFlags(cmd, &p, &attach)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var p api.TaskPayload
	var attach []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			if err := normalizeTaskPayload(&p); err != nil {
				return writeErr(cmd, err)
			}
			files, closeFiles, err := openAttachments(attach)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFiles()
			task, err := client.UpdateTask(cmd.Context(), id, p, files)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	taskFlags(cmd, &p, &attach)
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			if err := client.DeleteTask(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}

func newTasksHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show a task's change history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			entries, err := client.TaskHistory(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": entries})
		},
	}
}

func newTasksDetachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detach <id> <filename>",
		Short: "Remove an attachment from a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			if err := client.DeleteAttachment(cmd.Context(), id, args[1], sess.Current().User.Email); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "removed"})
		},
	}
}
