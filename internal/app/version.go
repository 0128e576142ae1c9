package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/printmax/enquiry-desk/internal/app.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the line printed by "printmax version". A binary installed
// with go install and no ldflags reports its module version instead of dev.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, moduleVersion())
}

func formatVersion(version, commit, built, module string) string {
	if version == "dev" && module != "" {
		version = module
	}
	return fmt.Sprintf("printmax %s (commit %s, built %s)", version, commit, built)
}

func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "(devel)" {
		return ""
	}
	return info.Main.Version
}
