package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/storewalk/storewalk/internal/feedserver"
	"github.com/storewalk/storewalk/internal/logging"
)

// defaultServeAddr is the fixture feed's default listen address.
const defaultServeAddr = ":8718"

// NewServeCmd creates the "serve" command: a local fixture product feed for
// development and demos without network access.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local fixture product feed",
		Long: "Serve a built-in 25-product catalog as a JSON array at /products.\n" +
			"Point the browser at it with --feed-url to work offline.",
		Example: `  # Serve on the default port
  storewalk serve

  # Serve on a custom address, then browse it
  storewalk serve --addr :9000
  storewalk browse --feed-url http://localhost:9000/products`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := feedserver.New(addr, logging.ComponentLogger(logger, "feedserver"), nil)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")

	return cmd
}
