package ll2utm

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/xyang2013/ll2utm/src.Version=X'"`
var Version string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	if bi == nil {
		return defaultValue
	}

	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// VersionString describes this build, e.g.
// "ll2utm - Version 1.2.0 (revision abc123, built at 2026-01-01T00:00:00Z)".
func VersionString(bi *debug.BuildInfo) string {
	var buildTimeStr = getBuildSettingOrDefault(bi, "vcs.time", "UNKNOWN")

	var (
		buildCommit               = getBuildSettingOrDefault(bi, "vcs.revision", "UNKNOWN")
		buildDirtyStr             = getBuildSettingOrDefault(bi, "vcs.modified", "INVALID")
		buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	)

	if buildDirty {
		buildCommit += "-DIRTY"
	} else if buildDirtyErr != nil {
		buildCommit += "-UNKNOWNDIRTY"
	}

	var version = Version
	if version == "" {
		version = "!UNKNOWN!"
	}

	return fmt.Sprintf("ll2utm - Version %s (revision %s, built at %s)", version, buildCommit, buildTimeStr)
}

func PrintVersion(w io.Writer) {
	var buildInfo, _ = debug.ReadBuildInfo()

	fmt.Fprintln(w, VersionString(buildInfo))
}
