// Package version exposes the build version stamped at link time.
package version

// Version is overridden at build time via
// -ldflags "-X github.com/storewalk/storewalk/pkg/version.Version=v1.2.3".
var Version = "dev" //nolint:gochecknoglobals // Set by the linker

// GetVersion returns the build version.
func GetVersion() string {
	return Version
}
