package cli

import (
	"github.com/spf13/cobra"

	"lexdesk/internal/format"
	"lexdesk/internal/model"
	"lexdesk/internal/workspace"
)

type windowSummary struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Position   model.Position `json:"position"`
	Size       model.Size     `json:"size"`
	StackOrder int            `json:"stackOrder"`
	Pinned     bool           `json:"pinned,omitempty"`
	Minimized  bool           `json:"minimized,omitempty"`
	Hidden     bool           `json:"hidden,omitempty"`
	Items      int            `json:"items"`
}

func summarize(w *model.Window) windowSummary {
	return windowSummary{
		ID:         w.ID,
		Label:      w.Label,
		Position:   w.Position,
		Size:       w.Size,
		StackOrder: w.StackOrder,
		Pinned:     w.Pinned,
		Minimized:  w.Minimized,
		Hidden:     w.Hidden,
		Items:      len(w.Content),
	}
}

func newWindowsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "Manage desk windows",
	}
	cmd.AddCommand(newWindowsListCmd(app))
	cmd.AddCommand(newWindowsAddCmd(app))
	cmd.AddCommand(newWindowsRmCmd(app))
	cmd.AddCommand(newWindowsShowCmd(app))
	cmd.AddCommand(newWindowsRenameCmd(app))
	cmd.AddCommand(newWindowsFrontCmd(app))
	cmd.AddCommand(newWindowsPinCmd(app))
	cmd.AddCommand(newWindowsMinimizeCmd(app))
	cmd.AddCommand(newWindowsHideCmd(app))
	cmd.AddCommand(newWindowsMoveCmd(app))
	cmd.AddCommand(newWindowsResizeCmd(app))
	return cmd
}

func newWindowsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := loadState(app)
			if err != nil {
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
		},
	}
}

func newWindowsAddCmd(app *App) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new window at the next cascaded position",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			w := st.AddWindow(label, nil)
			if err := saveState(s, st); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": summarize(w)})
		},
	}
	cmd.Flags().StringVar(&label, "label", "appunti", "Window label")
	return cmd
}

func newWindowsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <window-id>",
		Short: "Remove a window and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := st.FindWindow(args[0]); !ok {
				return writeErr(cmd, errNotFound("window", args[0]))
			}
			st.RemoveWindow(args[0])
			if err := saveState(s, st); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": args[0]}})
		},
	}
}

func newWindowsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <window-id>",
		Short: "Show a window with its full content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := loadState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			w, ok := st.FindWindow(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("window", args[0]))
			}
			labels := make([]string, 0, len(w.Content))
			for _, it := range w.Content {
				labels = append(labels, format.ItemLabel(it))
			}
			return writeOut(cmd, app, map[string]any{
				"data": w,
				"meta": map[string]any{"labels": labels},
			})
		},
	}
}

func newWindowsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <window-id> <label>",
		Short: "Rename a window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) {
				st.RenameWindow(id, args[1])
			})
		},
	}
}

func newWindowsFrontCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "front <window-id>",
		Short: "Bring a window to the front (no-op for pinned windows)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) { st.BringToFront(id) })
		},
	}
}

func newWindowsPinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pin <window-id>",
		Short: "Toggle a window's pinned flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) { st.TogglePin(id) })
		},
	}
}

func newWindowsMinimizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "minimize <window-id>",
		Short: "Toggle a window's minimized flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) { st.ToggleMinimize(id) })
		},
	}
}

func newWindowsHideCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hide <window-id>",
		Short: "Toggle a window's hidden flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) { st.ToggleHidden(id) })
		},
	}
}

func newWindowsMoveCmd(app *App) *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "move <window-id>",
		Short: "Set a window's position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) {
				st.SetWindowPosition(id, model.Position{X: x, Y: y})
			})
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "X position in desk units")
	cmd.Flags().Float64Var(&y, "y", 0, "Y position in desk units")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}

func newWindowsResizeCmd(app *App) *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "resize <window-id>",
		Short: "Set a window's size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) {
				st.SetWindowSize(id, model.Size{Width: width, Height: height})
			})
		},
	}
	cmd.Flags().Float64Var(&width, "width", 0, "Width in desk units")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in desk units")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
