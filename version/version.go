package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information for the running binary.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"gitCommit,omitempty"`
	GoVersion string    `json:"goVersion,omitempty"`
	BuildDate time.Time `json:"buildDate"`
	IsRelease bool      `json:"isRelease"`
	IsDirty   bool      `json:"isDirty,omitempty"`
}

// Get returns the version information, filling gaps from the embedded VCS
// build info.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			case "vcs.time":
				if info.BuildDate.IsZero() {
					if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
						info.BuildDate = t
					}
				}
			}
		}
	}

	return info
}

// Short returns a short version string such as "1.2.0-abc1234".
func Short() string {
	info := Get()
	if info.GitCommit == "" {
		return info.Version
	}
	if info.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	}
	return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
}
