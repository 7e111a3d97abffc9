package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scottCheezem/reminders-cli/internal/config"
	"github.com/scottCheezem/reminders-cli/internal/logging"
	"github.com/scottCheezem/reminders-cli/internal/reminders"
	"github.com/scottCheezem/reminders-cli/internal/store"
)

var (
	cfgFile  string
	logLevel string

	// cfg is loaded once in the root PersistentPreRunE and read by every
	// subcommand.
	cfg *config.Config
)

// rootCmd represents the base command for the reminders application
var rootCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Interact with reminder lists from the command line",
	Long: `reminders lists, completes and creates reminder items kept in the
underlying reminders store.

Reminders are addressed by their list name (case-insensitive) and their
position in the list's non-completed items as printed by 'reminders show'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		logging.Setup(cfg.Log.Level)
		return nil
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "reminders version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.reminders/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newShowListsCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// openStore opens the configured reminders database, creating its parent
// directory on first use.
func openStore() (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reminders directory: %w", err)
	}
	return store.Open(cfg.Store.Path)
}

// newAuthorizedFacade opens the store, builds a facade writing to stdout
// and performs the single access request of this process invocation.
// The returned cleanup closes the store.
func newAuthorizedFacade(ctx context.Context) (*reminders.Facade, func(), error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	f := reminders.New(st, os.Stdout)
	granted, err := f.RequestAccess(ctx)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	if !granted {
		st.Close()
		return nil, nil, &reminders.AccessDeniedError{}
	}

	return f, func() { _ = st.Close() }, nil
}
