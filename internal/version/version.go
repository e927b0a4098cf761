// Package version exposes build identity for the CLI and logs.
package version

import "fmt"

// Version is overridden at build time via -ldflags.
var Version = "dev"

// Commit is the short git hash the binary was built from.
var Commit = "unknown"

// String returns the full version line.
func String() string {
	return fmt.Sprintf("praeda %s (%s)", Version, Commit)
}
