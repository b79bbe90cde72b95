package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"punchclock/internal/domain"
)

// newRunCommand executes one chat command for an identity and prints the
// feedback, exactly as a chat transport would deliver it.
func (r *RootCommand) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <identity> <command...>",
		Short: "Execute one time-clock command for an identity",
		Example: `  punchclock run alice enter
  punchclock run alice leave 21h15
  punchclock run alice "11h40 15h00"
  punchclock run alice clear monday`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := domain.Identity(args[0])
			text := strings.Join(args[1:], " ")

			ctx, cancel := r.commandContext(cmd.Context())
			defer cancel()

			result, err := r.api.Execute(ctx, identity, text, r.api.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Feedback)
			if result.OK && result.Execution != nil && result.Execution.Summary != nil {
				fmt.Fprint(cmd.OutOrStdout(), r.renderer().Render(result.Execution.Summary))
			}
			return nil
		},
	}
}
