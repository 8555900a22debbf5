package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lexdesk/internal/fetch"
	"lexdesk/internal/format"
	"lexdesk/internal/store"
	"lexdesk/internal/tui"
	"lexdesk/internal/workspace"
)

type App struct {
	Dir        string
	Workspace  string
	APIBase    string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "lexdesk",
		Short:        "Local-first legal research desk: CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive desk
  lexdesk

  # Scriptable commands
  lexdesk windows list
  lexdesk open urn:nir:stato:legge:1990-08-07;241
  lexdesk articles merge <window-id> <standalone-id> <group-id>
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("LEXDESK_DIR", ""), "Path to store dir (advanced: overrides workspace resolution)")
	cmd.PersistentFlags().StringVar(&app.Workspace, "workspace", envOr("LEXDESK_WORKSPACE", ""), "Workspace name (default: 'default')")
	cmd.PersistentFlags().StringVar(&app.APIBase, "api", envOr("LEXDESK_API", "https://www.normattiva.it/api"), "Base URL of the act retrieval service")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LEXDESK_FORMAT", "json"), "Output format (json|text)")

	cmd.AddCommand(newWindowsCmd(app))
	cmd.AddCommand(newArticlesCmd(app))
	cmd.AddCommand(newCollectionsCmd(app))
	cmd.AddCommand(newOpenCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

func runTUI(app *App) error {
	st, s, err := loadState(app)
	if err != nil {
		return err
	}
	client := fetch.NewClient(app.APIBase, newLogger())
	return tui.Run(s, st, client, newLogger())
}

// resolveDir resolves the store directory.
//
// Workspace-first:
// 1) --dir
// 2) --workspace
// 3) project-local .lexdesk discovery (walking up from the cwd)
func resolveDir(app *App) (string, error) {
	if app.Dir != "" {
		return app.Dir, nil
	}
	if app.Workspace != "" {
		return store.WorkspaceDir(app.Workspace)
	}
	return store.DefaultDir()
}

func loadState(app *App) (*workspace.State, store.Store, error) {
	dir, err := resolveDir(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	app.Dir = dir

	s := store.Store{Dir: dir}
	st, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return st, s, nil
}

// saveState persists the mutated model back to the store.
func saveState(s store.Store, st *workspace.State) error {
	return s.Save(st)
}

// mutateWindow runs one workspace mutation against a window, saves, and
// prints the window's summary (or a removal notice when the mutation made
// the window disappear).
func mutateWindow(cmd *cobra.Command, app *App, windowID string, fn func(*workspace.State, string)) error {
	st, s, err := loadState(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	if _, ok := st.FindWindow(windowID); !ok {
		return writeErr(cmd, errNotFound("window", windowID))
	}
	fn(st, windowID)
	if err := saveState(s, st); err != nil {
		return writeErr(cmd, err)
	}
	if w, ok := st.FindWindow(windowID); ok {
		return writeOut(cmd, app, map[string]any{"data": summarize(w)})
	}
	return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": windowID}})
}

// mutateItem validates that the window and item exist, runs the mutation,
// saves, and prints the resulting window list (mutations may cascade into
// window removal, so a single-window summary would often dangle).
func mutateItem(cmd *cobra.Command, app *App, windowID, itemID string, fn func(*workspace.State)) error {
	st, s, err := loadState(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	w, ok := st.FindWindow(windowID)
	if !ok {
		return writeErr(cmd, errNotFound("window", windowID))
	}
	if _, ok := w.FindItem(itemID); !ok {
		return writeErr(cmd, errNotFound("item", itemID))
	}
	fn(st)
	if err := saveState(s, st); err != nil {
		return writeErr(cmd, err)
	}
	out := make([]windowSummary, 0, len(st.Windows))
	for _, w := range st.Windows {
		out = append(out, summarize(w))
	}
	return writeOut(cmd, app, map[string]any{
		"data": out,
		"meta": map[string]any{"count": len(out)},
	})
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if os.Getenv("LEXDESK_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
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
