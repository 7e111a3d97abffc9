package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/scottCheezem/reminders-cli/internal/logging"
	"github.com/scottCheezem/reminders-cli/internal/server"
	"github.com/scottCheezem/reminders-cli/internal/tools/reminders_tools"
)

const metricsShutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server exposing the reminders tools",
		Long: `Run a Model Context Protocol server over stdio, exposing the
reminders operations as tools for AI assistants:

  reminders_show_lists, reminders_show, reminders_complete,
  reminders_delete, reminders_add

With --metrics-addr set, a Prometheus /metrics endpoint reporting tool and
store activity is served on that address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			s := mcpserver.NewMCPServer("reminders", version,
				mcpserver.WithToolCapabilities(false),
			)
			if err := reminders_tools.RegisterReminderTools(s, st); err != nil {
				return fmt.Errorf("failed to register reminders tools: %w", err)
			}

			addr := metricsAddr
			if addr == "" {
				addr = cfg.Serve.MetricsAddr
			}
			if addr != "" {
				ms := server.NewMetricsServer(addr)
				go func() {
					if err := ms.Start(); err != nil {
						slog.Error("metrics server stopped", logging.Err(err))
					}
				}()
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
					defer cancel()
					_ = ms.Shutdown(ctx)
				}()
				slog.Info("metrics server listening", slog.String("addr", ms.Addr()))
			}

			slog.Info("starting MCP server on stdio",
				slog.String("store", cfg.Store.Path))
			if err := mcpserver.ServeStdio(s); err != nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Listen address for the Prometheus /metrics endpoint (disabled when empty)")
	return cmd
}
