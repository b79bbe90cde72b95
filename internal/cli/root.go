// Package cli wires the cobra commands around the api facade.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"punchclock/internal/api"
	"punchclock/internal/config"
	"punchclock/internal/feedback"
	"punchclock/internal/render"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(apiInstance api.API, cfg *config.Config, logger *slog.Logger) *RootCommand {
	if logger == nil {
		logger = slog.Default()
	}
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
		logger: logger,
	}

	root.cmd = &cobra.Command{
		Use:   "punchclock",
		Short: "A conversational time-clock",
		Long: `Punchclock records work-time spans from short chat commands.

COMMANDS UNDERSTOOD:
  enter                       clock in now
  enter 18h30                 clock in at 18:30 today
  leave                       clock out now
  leave 21h15                 clock out at 21:15 today
  enter 18h30 leave 21h15     record a complete span
  11h40 15h00                 record a span today
  tuesday 11h40 15h00         record a span on the last Tuesday
  24 11h40 15h00              record a span on the 24th
  2025/09                     summary for September 2025
  september                   summary for the most recent September
  month                       summary for the current month
  clear                       remove today's spans
  clear monday                remove last Monday's spans

CONFIGURATION (environment variables):
  PUNCHCLOCK_DB_DIR           database directory (default: ~/.punchclock)
  PUNCHCLOCK_DB_FILENAME      database filename (default: punchclock.db)
  PUNCHCLOCK_TIMEZONE         IANA time zone (default: UTC)
  PUNCHCLOCK_REPORT_LANGUAGE  report language, en or es (default: en)
  PUNCHCLOCK_HTTP_ADDR        serve listen address (default: :8080)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(r.newRunCommand())
	r.cmd.AddCommand(r.newReportCommand())
	r.cmd.AddCommand(r.newServeCommand())
}

// renderer builds the table renderer for the configured report language.
func (r *RootCommand) renderer() *render.TableRenderer {
	return render.NewTableRenderer(feedback.Language(r.config.Report.Language))
}

// commandContext bounds one command by the configured query timeout.
func (r *RootCommand) commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := r.config.Database.QueryTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(parent, timeout)
}
