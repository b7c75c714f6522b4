// Package version reports the gobokeh build version.
package version

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Version may be overridden at build time via
// -ldflags "-X github.com/gobokeh/gobokeh/internal/version.Version=...".
var Version = "dev"

// String returns the best available version string for this build.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// ShowVersion prints the program version.
func ShowVersion(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "gobokeh %s\n", String())
}
