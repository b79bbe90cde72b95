package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"punchclock/internal/domain"
)

// newReportCommand prints a month's table for an identity without going
// through command text.
func (r *RootCommand) newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "report <identity> <year> <month>",
		Short:   "Print the month report for an identity",
		Example: `  punchclock report alice 2025 9`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := domain.Identity(args[0])
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}
			month, err := strconv.Atoi(args[2])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q", args[2])
			}

			ctx, cancel := r.commandContext(cmd.Context())
			defer cancel()

			summary, err := r.api.BuildSummary(ctx, identity, year, time.Month(month))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), r.renderer().Render(summary))
			return nil
		},
	}
}
