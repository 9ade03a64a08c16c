package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/spacemissions/internal/cli/output"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// NewBuildInfo fills in the runtime fields for a release.
func NewBuildInfo(version, commit, date string) BuildInfo {
	return BuildInfo{
		Version:   version,
		GitCommit: commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Long: `Print the spacemissions release, the commit and date it was built from,
and the Go toolchain and platform. Honors --output json.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}

			r.Printf("spacemissions v%s\n", info.Version)
			r.Println(r.Styles().Muted.Render(fmt.Sprintf("commit %s, built %s, %s %s",
				info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)))
			return nil
		},
	}
}
