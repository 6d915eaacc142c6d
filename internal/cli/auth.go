package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taskvortex/internal/api"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			if password == "" {
				// Prompting keeps the password out of shell history.
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return writeErr(cmd, err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			resp, err := client.Login(cmd.Context(), api.Credentials{Email: email, Password: password})
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.Establish(resp); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"email": resp.Email,
				"role":  resp.Role,
				"name":  resp.User().FullName(),
			}})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", os.Getenv("TASKVORTEX_PASSWORD"), "Password (prompted if empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, done, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := sess.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "logged out"})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, done, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()
			if err := requireAuth(sess); err != nil {
				return writeErr(cmd, err)
			}
			cur := sess.Current()
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"name":  cur.User.FullName(),
				"email": cur.User.Email,
				"role":  cur.Role,
			}})
		},
	}
}
