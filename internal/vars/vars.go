// Package vars holds build information injected with -ldflags.
package vars

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g.
//
//	-ldflags "-X github.com/woozymasta/loco-construct/internal/vars.Version=v1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	URL       = "https://github.com/woozymasta/loco-construct"
)

// String returns a one-line version summary.
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, BuildTime)
}

// Print writes the build information to stdout.
func Print() {
	fmt.Printf("version:    %s\n", Version)
	fmt.Printf("commit:     %s\n", Commit)
	fmt.Printf("built:      %s\n", BuildTime)
	fmt.Printf("go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Printf("url:        %s\n", URL)
}
