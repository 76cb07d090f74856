// Package version reports the build the running binary came from
package version

import "runtime/debug"

// Service is the name the API reports for itself
const Service = "toxmanager-api"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Set with -ldflags "-X 'toxmanager/internal/core/version.version=v0.1.0'
// -X 'toxmanager/internal/core/version.commit=abcd' -X 'toxmanager/internal/core/version.date=2024-03-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information. Without ldflags the commit falls back
// to the VCS revision the toolchain embedded, when there is one
func Info() BuildInfo {
	bi := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
		if bi.Commit == "none" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					bi.Commit = s.Value
				}
			}
		}
	}
	return bi
}
