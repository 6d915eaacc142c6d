package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"taskvortex/internal/perm"
)

func newDepartmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Department commands",
	}
	cmd.AddCommand(newDepartmentsListCmd(app))
	cmd.AddCommand(newDepartmentsAddCmd(app))
	cmd.AddCommand(newDepartmentsDeleteCmd(app))
	return cmd
}

func newDepartmentsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			deps, err := client.ListDepartments(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, departmentList{Data: deps})
		},
	}
}

func newDepartmentsAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a department (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			if !perm.CanManageDepartments(sess.Current().Role) {
				return writeErr(cmd, errRoleDenied("add departments", string(sess.Current().Role)))
			}
			d, err := client.CreateDepartment(cmd.Context(), name)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": d})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Department name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDepartmentsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a department (admin only)",
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
			if !perm.CanManageDepartments(sess.Current().Role) {
				return writeErr(cmd, errRoleDenied("delete departments", string(sess.Current().Role)))
			}
			if err := client.DeleteDepartment(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}
