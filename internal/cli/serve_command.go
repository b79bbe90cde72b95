package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"punchclock/internal/transport/httpapi"
)

// newServeCommand starts the chat-webhook HTTP transport.
func (r *RootCommand) newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chat-webhook HTTP transport",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := httpapi.NewServer(r.api, r.renderer(), r.logger)
			r.logger.Info("listening", slog.String("addr", addr))
			return server.Start(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", r.config.HTTP.Addr, "listen address")
	return cmd
}
