package cli

import (
	"github.com/spf13/cobra"

	"lexdesk/internal/fetch"
	"lexdesk/internal/model"
	"lexdesk/internal/workspace"
)

func newArticlesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Manage articles inside windows",
	}
	cmd.AddCommand(newArticlesAddCmd(app))
	cmd.AddCommand(newArticlesExtractCmd(app))
	cmd.AddCommand(newArticlesRemoveCmd(app))
	cmd.AddCommand(newArticlesMoveCmd(app))
	cmd.AddCommand(newArticlesMergeCmd(app))
	return cmd
}

func newArticlesAddCmd(app *App) *cobra.Command {
	var annex string
	var standalone bool

	cmd := &cobra.Command{
		Use:   "add <window-id> <act-urn> <number>",
		Short: "Fetch an article and add it to a window",
		Long: `Fetches the article from the retrieval service and merges it into the
window's group block for the act (creating the block when missing). With
--standalone the article is added as a detached item instead.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			w, ok := st.FindWindow(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("window", args[0]))
			}
			act, err := model.ParseURN(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}

			client := fetch.NewClient(app.APIBase, newLogger())
			articles, err := client.FetchArticle(cmd.Context(), act, args[2], annex)
			if err != nil {
				return writeErr(cmd, err)
			}
			if standalone {
				for _, a := range articles {
					st.AddStandaloneArticle(w.ID, a, act)
				}
			} else {
				st.AddArticlesToGroup(w.ID, act, articles)
			}
			if err := saveState(s, st); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": summarize(w),
				"meta": map[string]any{"fetched": len(articles)},
			})
		},
	}
	cmd.Flags().StringVar(&annex, "annex", "", "Annex the article belongs to (empty for main text)")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "Add as a standalone item instead of merging into the act's group")
	return cmd
}

func newArticlesExtractCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <window-id> <group-id> <article-id>",
		Short: "Detach an article from a group into a standalone item",
		Long: `The article id is its unique identity: the bare number ("3-bis") for
main-text articles, or "all<annex>:<number>" for annex articles. The
emptied group is deleted; the window stays.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateItem(cmd, app, args[0], args[1], func(st *workspace.State) {
				st.ExtractArticleFromGroup(args[0], args[1], args[2])
			})
		},
	}
}

func newArticlesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <window-id> <group-id> <article-id>",
		Short: "Remove an article from a group",
		Long:  "An emptied group is deleted, and an emptied window goes with it.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateItem(cmd, app, args[0], args[1], func(st *workspace.State) {
				st.RemoveArticleFromGroup(args[0], args[1], args[2])
			})
		},
	}
}

func newArticlesMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <item-id> <from-window-id> <to-window-id>",
		Short: "Reparent a content item onto another window",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateItem(cmd, app, args[1], args[0], func(st *workspace.State) {
				st.MoveItemBetweenWindows(args[0], args[1], args[2])
			})
		},
	}
}

func newArticlesMergeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <window-id> <standalone-id> <group-id>",
		Short: "Fold a standalone article into a group block",
		Long: `Valid only when the standalone's source act exactly equals the group's
act (type, number and date); otherwise nothing changes. Same-numbered
articles from different annexes stay distinct.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateItem(cmd, app, args[0], args[1], func(st *workspace.State) {
				st.MergeStandaloneIntoGroup(args[0], args[1], args[2])
			})
		},
	}
}
