package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/spacemissions/internal/cli/config"
)

func runVersion(t *testing.T, info BuildInfo, mode string) string {
	t.Helper()

	cmd := NewVersionCommand(info)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	cfg := config.FromContext(context.Background())
	cfg.OutputFormat = mode
	cmd.SetContext(config.WithConfig(context.Background(), cfg))

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestVersionCommand_Text(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want []string
	}{
		{
			name: "release build",
			info: NewBuildInfo("1.2.3", "abc1234", "2026-01-02"),
			want: []string{"spacemissions v1.2.3", "commit abc1234", "built 2026-01-02", runtime.Version()},
		},
		{
			name: "dev build",
			info: NewBuildInfo("dev", "unknown", "unknown"),
			want: []string{"spacemissions vdev", "commit unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runVersion(t, tt.info, "text")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	info := NewBuildInfo("0.1.0", "deadbeef", "2026-10-18")

	var got BuildInfo
	require.NoError(t, json.Unmarshal([]byte(runVersion(t, info, "json")), &got))
	assert.Equal(t, info, got)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, got.Platform)
}
