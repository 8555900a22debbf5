package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"lexdesk/internal/workspace"
)

var errDoctorIssuesFound = errors.New("doctor found errors")

func newDoctorCmd(app *App) *cobra.Command {
	var fail bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the workspace model invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := loadState(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			report := workspace.Doctor(st)
			if err := writeOut(cmd, app, map[string]any{
				"data": report,
				"meta": map[string]any{
					"issues":    len(report.Issues),
					"hasErrors": report.HasErrors(),
				},
			}); err != nil {
				return err
			}

			if fail && report.HasErrors() {
				return errDoctorIssuesFound
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fail, "fail", false, "Exit with non-zero status if errors are found")
	return cmd
}
