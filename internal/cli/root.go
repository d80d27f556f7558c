package cli

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/storewalk/storewalk/internal/catalog"
	"github.com/storewalk/storewalk/internal/config"
	"github.com/storewalk/storewalk/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// logFileHandle tracks the open log file for cleanup after the command runs.
var logFileHandle *os.File //nolint:gochecknoglobals // Paired with the package-level logger

// NewRootCmd creates the root Cobra command for the storewalk CLI.
// It wires up configuration loading, logging, and the browse, products,
// serve, and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:     "storewalk",
		Short:   "Browse a product catalog from your terminal",
		Long:    "storewalk: fetch a remote product feed and page through it as a scrollable list",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg)
			config.SetGlobal(cfg)

			// The browse TUI owns the terminal; keep stderr clean and
			// log to the file only (when one is configured).
			quietConsole := cmd.Name() == "browse" && isTerminal(os.Stdout)

			procLogger, logFile, err := config.NewLogger(cfg.Logging, quietConsole)
			if err != nil {
				return err
			}
			logFileHandle = logFile
			logger = logging.ComponentLogger(procLogger, "cli")

			ctx := cmd.Context()
			traceID := logging.GetOrGenerateTraceID(ctx)
			ctx = logging.ContextWithTraceID(ctx, traceID)
			ctx = logger.WithContext(ctx)
			cmd.SetContext(ctx)

			logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logFileHandle != nil {
				err := logFileHandle.Close()
				logFileHandle = nil
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $HOME/.storewalk/config.yaml)")
	cmd.PersistentFlags().String("feed-url", "", "product feed endpoint (overrides config)")
	cmd.PersistentFlags().Int("page-size", 0, "items per page (overrides config)")

	cmd.AddCommand(NewBrowseCmd(), NewProductsCmd(), NewServeCmd(), NewVersionCmd(ver))

	return cmd
}

// applyFlagOverrides layers explicitly set CLI flags over the loaded config.
// Flags beat environment variables, which beat the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("feed-url") {
		if url, _ := cmd.Flags().GetString("feed-url"); url != "" {
			cfg.Feed.URL = url
		}
	}
	if cmd.Flags().Changed("page-size") {
		if size, _ := cmd.Flags().GetInt("page-size"); size > 0 {
			cfg.Catalog.PageSize = size
		}
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}
}

// newFeedClient builds the product feed client from the resolved config.
func newFeedClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Feed.URL,
		catalog.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
		catalog.WithSnapshotTTL(cfg.CacheTTL()),
		catalog.WithLogger(logging.ComponentLogger(logger, "feed")),
	)
}

const rootCmdExample = `  # Browse the catalog interactively
  storewalk browse

  # Browse a different feed with larger pages
  storewalk browse --feed-url http://localhost:8718/products --page-size 20

  # Print page 2 of the catalog sorted by price, highest first
  storewalk products --page 2 --sort price:desc

  # Print the full first page as JSON
  storewalk products --output json

  # Run a local fixture feed for offline development
  storewalk serve --addr :8718

  # Check whether a newer release is available
  storewalk version --check`
