package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"taskvortex/internal/api"
	"taskvortex/internal/model"
	"taskvortex/internal/perm"
	"taskvortex/internal/statusutil"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsStatusCmd(app, "archive", model.ProjectArchived))
	cmd.AddCommand(newProjectsStatusCmd(app, "restore", model.ProjectActive))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects (managers see only their own)",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := statusutil.NormalizeProjectStatus(statusFilter)
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

			var projects []model.Project
			if perm.SeesAllData(sess.Current().Role) {
				projects, err = client.ListProjects(cmd.Context())
			} else {
				projects, err = client.ListProjectsByManager(cmd.Context(), sess.Current().User.ID)
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			if status != "" {
				kept := projects[:0]
				for _, p := range projects {
					if p.Status == status {
						kept = append(kept, p)
					}
				}
				projects = kept
			}
			return writeOut(cmd, app, projectList{Data: projects})
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "Filter by status (ACTIVE|ARCHIVED)")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project",
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
			p, err := client.GetProject(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var p api.ProjectPayload
	var members []int64

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Create a project (admin or manager)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			if !perm.CanManageProjects(sess.Current().Role) {
				return writeErr(cmd, errRoleDenied("create projects", string(sess.Current().Role)))
			}
			if p.StartDate != "" && p.EndDate != "" && p.EndDate < p.StartDate {
				return writeErr(cmd, errEndBeforeStart())
			}
			if p.ManagerID == 0 {
				p.ManagerID = sess.Current().User.ID
			}
			p.MemberIDs = members
			created, err := client.CreateProject(cmd.Context(), p)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": created})
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&p.Key, "key", "", "Project key")
	cmd.Flags().StringVar(&p.Description, "description", "", "Description")
	cmd.Flags().Int64Var(&p.ManagerID, "manager", 0, "Manager user id (default: current user)")
	cmd.Flags().StringVar(&p.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.EndDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Int64SliceVar(&members, "member", nil, "Member user id (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	var p api.ProjectPayload
	var members []int64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project (admin or manager)",
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
			if !perm.CanManageProjects(sess.Current().Role) {
				return writeErr(cmd, errRoleDenied("update projects", string(sess.Current().Role)))
			}
			if p.StartDate != "" && p.EndDate != "" && p.EndDate < p.StartDate {
				return writeErr(cmd, errEndBeforeStart())
			}
			p.MemberIDs = members
			updated, err := client.UpdateProject(cmd.Context(), id, p)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": updated})
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&p.Key, "key", "", "Project key")
	cmd.Flags().StringVar(&p.Description, "description", "", "Description")
	cmd.Flags().Int64Var(&p.ManagerID, "manager", 0, "Manager user id")
	cmd.Flags().StringVar(&p.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.EndDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Int64SliceVar(&members, "member", nil, "Member user id (repeatable)")
	return cmd
}

func newProjectsStatusCmd(app *App, verb string, status model.ProjectStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: verb + " a project",
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
			p, err := client.UpdateProjectStatus(cmd.Context(), id, status)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
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
			if err := client.DeleteProject(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}
