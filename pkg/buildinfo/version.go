// Package buildinfo reports the version baked into a gridbuilder binary.
//
// Release builds inject the values with ldflags:
//
//	go build -ldflags "\
//	    -X github.com/lucidworks/gridbuilder/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/lucidworks/gridbuilder/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/lucidworks/gridbuilder/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A plain `go build` leaves them unset; Commit then falls back to the VCS
// revision recorded by the toolchain, when one is available.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Values injected at link time. Zero-install builds keep the fallbacks.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// ResolveCommit returns the injected commit, or the module's VCS revision
// from the embedded build info when ldflags did not set one.
func ResolveCommit() string {
	if Commit != "" {
		return Commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}

// String returns a single-line version summary for logs.
func String() string {
	s := fmt.Sprintf("%s (%s", Version, ResolveCommit())
	if Date != "" {
		s += ", built " + Date
	}
	return s + ")"
}

// Template returns the template cobra renders for the --version flag.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\n", String())
}
