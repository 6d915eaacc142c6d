package cli

import (
	"github.com/spf13/cobra"

	"taskvortex/internal/api"
	"taskvortex/internal/perm"
)

// defaultPassword is the initial password given to admin-created accounts.
const defaultPassword = "Task@123"

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User commands",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersAddCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, userList{Data: users})
		},
	}
}

func newUsersAddCmd(app *App) *cobra.Command {
	var req api.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			if !perm.CanManageUsers(sess.Current().Role) {
				return writeErr(cmd, errRoleDenied("add users", string(sess.Current().Role)))
			}
			if req.Password == "" {
				req.Password = defaultPassword
			}
			u, err := client.CreateUser(cmd.Context(), req)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email")
	cmd.Flags().StringVar(&req.Role, "role", "EMPLOYEE", "Role (ADMIN|MANAGER|EMPLOYEE)")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department name")
	cmd.Flags().StringVar(&req.JobTitle, "job-title", "", "Job title")
	cmd.Flags().StringVar(&req.Password, "password", "", "Initial password (default Task@123)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
