package cli

import (
	"github.com/spf13/cobra"

	"github.com/storewalk/storewalk/internal/release"
)

// NewVersionCmd creates the "version" command. With --check it queries the
// latest published release and reports whether an upgrade is available.
func NewVersionCmd(ver string) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the storewalk version",
		Example: `  storewalk version

  # Also check for a newer release
  storewalk version --check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("storewalk %s\n", ver)

			if !check {
				return nil
			}

			latest, err := release.NewChecker("").Latest(cmd.Context())
			if err != nil {
				return err
			}

			newer, err := release.IsNewer(ver, latest.TagName)
			if err != nil {
				return err
			}

			if newer {
				cmd.Printf("A newer release is available: %s\n%s\n", latest.TagName, latest.HTMLURL)
			} else {
				cmd.Println("You are on the latest release.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")

	return cmd
}
