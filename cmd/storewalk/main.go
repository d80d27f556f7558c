// Command storewalk browses a remote product catalog from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/storewalk/storewalk/internal/cli"
	"github.com/storewalk/storewalk/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds and executes the root command.
func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
