package cli

import (
	"fmt"
	"os"

	"taskvortex/internal/api"
	"taskvortex/internal/config"
	"taskvortex/internal/format"
	"taskvortex/internal/logger"
	"taskvortex/internal/session"
	"taskvortex/internal/store"
	"taskvortex/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	BaseURL    string
	DataDir    string
	PrettyJSON bool
	Format     string

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskvortex",
		Short:        "TaskVortex task manager client (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: `  # Start the interactive TUI
  taskvortex

  # Scriptable commands
  taskvortex login --email admin@taskvortex.io
  taskvortex tasks list --format table
  taskvortex projects archive 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if app.BaseURL != "" {
			cfg.APIBaseURL = app.BaseURL
		}
		if app.DataDir != "" {
			cfg.DataDir = app.DataDir
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "api", envOr("TASKVORTEX_API_BASE_URL", ""), "API base URL (default from config)")
	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", "", "State directory (overrides config; use for fixtures/tests)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKVORTEX_FORMAT", "json"), "Output format (json|table)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newDepartmentsCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTasksCmd(app))

	return cmd
}

func runTUI(app *App) error {
	sess, closeKV, err := loadSession(app)
	if err != nil {
		return err
	}
	defer closeKV()

	log, closeLog, err := logger.NewFile(app.cfg.DiagLogPath(), app.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog.Close() }()

	client := api.New(app.cfg.APIBaseURL, app.cfg.Timeout, sess.Token, log)
	return tui.Run(app.cfg, client, sess, log)
}

// loadSession opens the durable kv blob and reconstructs the persisted
// session. The returned func closes the kv handle.
func loadSession(app *App) (*session.Store, func(), error) {
	kv, err := store.Open(app.cfg.StatePath())
	if err != nil {
		return nil, nil, err
	}
	sess := session.NewStore(kv)
	if err := sess.Load(); err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	return sess, func() { _ = kv.Close() }, nil
}

// gateway builds an authenticated API client for one-shot commands. Commands
// that mutate require a persisted login.
func gateway(app *App) (*api.Client, *session.Store, func(), error) {
	sess, closeKV, err := loadSession(app)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(os.Stderr, app.cfg.LogLevel)
	return api.New(app.cfg.APIBaseURL, app.cfg.Timeout, sess.Token, log), sess, closeKV, nil
}

func requireAuth(sess *session.Store) error {
	if !sess.IsAuthenticated() {
		return errNotLoggedIn()
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
