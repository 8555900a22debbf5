package cli

import (
	"github.com/spf13/cobra"

	"lexdesk/internal/fetch"
	"lexdesk/internal/format"
	"lexdesk/internal/model"
)

func newOpenCmd(app *App) *cobra.Command {
	var annex string
	var label string

	cmd := &cobra.Command{
		Use:   "open <act-urn>",
		Short: "Open an act in a new window",
		Long: `Fetches the act's structure and creates a window holding a group block
with the act's articles (main text by default, one annex with --annex).
Article bodies are loaded on demand; the TUI fetches them when viewed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			act, err := model.ParseURN(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			st, s, err := loadState(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			client := fetch.NewClient(app.APIBase, newLogger())
			tree, err := client.FetchTree(cmd.Context(), act.URN)
			if err != nil {
				return writeErr(cmd, err)
			}
			numbers := tree.ArticleNumbersForAnnex(annex)
			if len(numbers) == 0 {
				if annex != "" {
					return writeErr(cmd, errNotFound("annex", annex))
				}
				return writeErr(cmd, errNotFound("articles in act", act.URN))
			}
			articles := make([]model.Article, 0, len(numbers))
			for _, n := range numbers {
				articles = append(articles, model.Article{Number: n, Annex: annex})
			}

			if label == "" {
				label = format.ActLabel(act)
				if annex != "" {
					label += " all. " + annex
				}
			}
			w := st.AddWindow(label, &model.GroupBlock{Act: act, Articles: articles})
			if err := saveState(s, st); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": summarize(w),
				"meta": map[string]any{"articles": len(articles)},
			})
		},
	}
	cmd.Flags().StringVar(&annex, "annex", "", "Open one annex instead of the main text")
	cmd.Flags().StringVar(&label, "label", "", "Window label (default: the act citation)")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the whole workspace state",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := loadState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": st})
		},
	}
}
