package cli

import (
	"github.com/spf13/cobra"

	"lexdesk/internal/workspace"
)

func newCollectionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Manage named article collections",
	}
	cmd.AddCommand(newCollectionsCreateCmd(app))
	cmd.AddCommand(newCollectionsRenameCmd(app))
	cmd.AddCommand(newCollectionsCollectCmd(app))
	return cmd
}

func newCollectionsCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <window-id> <label>",
		Short: "Create an empty collection in a window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateWindow(cmd, app, args[0], func(st *workspace.State, id string) {
				st.CreateCollection(id, args[1])
			})
		},
	}
}

func newCollectionsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <window-id> <collection-id> <label>",
		Short: "Rename a collection",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateItem(cmd, app, args[0], args[1], func(st *workspace.State) {
				st.RenameCollection(args[0], args[1], args[2])
			})
		},
	}
}

func newCollectionsCollectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "collect <window-id> <standalone-id> <collection-id>",
		Short: "Move a standalone article into a collection",
		Long: `The article travels with its source act, so collections can mix articles
from different acts. The source window is pruned when it empties.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateItem(cmd, app, args[0], args[1], func(st *workspace.State) {
				st.MoveStandaloneIntoCollection(args[0], args[1], args[2])
			})
		},
	}
}
