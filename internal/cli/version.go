package cli

import (
	"fmt"
	"runtime"
)

var (
	// Name represents the CLI name; used for invoking the CLI commands
	Name = "biletbudur"

	// Version represents the CLI version
	Version = "0.0.0" // value will be injected at build-time

	// Commit represents the CLI build commit
	Commit = "" // value will be injected at build-time
)

// BuildInfo describes the running CLI build
type BuildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"goVersion"`
	OSArch    string `json:"osArch"`
}

// CurrentBuild returns the build info of the running CLI
func CurrentBuild() BuildInfo {
	return BuildInfo{
		Name:      Name,
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		OSArch:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (b BuildInfo) String() string {
	if b.Commit == "" {
		return fmt.Sprintf("%s v%s (%s, %s)", b.Name, b.Version, b.GoVersion, b.OSArch)
	}
	return fmt.Sprintf("%s v%s+%s (%s, %s)", b.Name, b.Version, b.Commit, b.GoVersion, b.OSArch)
}
