package version

import (
	"fmt"
	"runtime"
)

// Version, Commit and BuildDate are set at build time, e.g.
// go build -ldflags "-X github.com/oukeidos/gemtrans/internal/version.Version=0.2.0"
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns a multi-line version string for CLI output.
func Info() string {
	return fmt.Sprintf("gemtrans %s\ncommit: %s\nbuild: %s\ngo: %s", Version, Commit, BuildDate, runtime.Version())
}

// UserAgent identifies requests sent by this build.
func UserAgent() string {
	return fmt.Sprintf("gemtrans/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
