// Package buildinfo holds version metadata injected at build time via
// -ldflags "-X github.com/tallybook-dev/tallybook/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
