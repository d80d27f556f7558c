package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/storewalk/storewalk/internal/catalog/pager"
	"github.com/storewalk/storewalk/internal/cli/pagination"
	"github.com/storewalk/storewalk/internal/config"
	"github.com/storewalk/storewalk/internal/logging"
	"github.com/storewalk/storewalk/internal/tui"
)

// NewBrowseCmd creates the "browse" command: the interactive scrollable
// catalog. When stdout is not a terminal (piped output, CI) it falls back to
// printing the first page the way "products" does.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the product catalog interactively",
		Long: "Open the product catalog as a scrollable list with incremental page loading.\n" +
			"Scroll past the last row to load the next page; press r to refresh.",
		Example: `  # Browse the default feed
  storewalk browse

  # Browse a local fixture feed
  storewalk browse --feed-url http://localhost:8718/products`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Global()

			if !isTerminal(os.Stdout) {
				// No TTY to run the list UI on; behave like a plain
				// first-page listing so piped output stays useful.
				params := pagination.NewParams()
				params.PageSize = cfg.Catalog.PageSize
				return runProductListing(cmd, cfg, params, "", cfg.Output.DefaultFormat)
			}

			ctrl := pager.New(newFeedClient(cfg),
				pager.WithPageSize(cfg.Catalog.PageSize),
				pager.WithLogger(logging.ComponentLogger(logger, "pager")),
			)

			model := tui.NewBrowseModel(cmd.Context(), ctrl, cfg.Catalog.Currency)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running catalog browser: %w", err)
			}
			return nil
		},
	}
}
