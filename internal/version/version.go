// Package version holds the build version, set with
// -ldflags "-X github.com/katalvlaran/vesatiming/internal/version.Version=...".
package version

var Version = "dev"
