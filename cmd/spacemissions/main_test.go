package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/spacemissions/internal/cli"
	"github.com/leapstack-labs/spacemissions/internal/testutil"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	if !strings.Contains(buf.String(), "spacemissions v") {
		t.Errorf("version output should contain 'spacemissions v', got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	for _, want := range []string{"--divisible-by", "--plot-file", "--summary", "fixed-width listing"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

func TestAnalyzeSampleData(t *testing.T) {
	data := testutil.WriteSampleData(t)

	cmd := cli.NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"--data", data, "--output", "text", "--summary", "-c", "USSR"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("analyze error = %v (stderr: %s)", err, errOut.String())
	}

	output := out.String()
	for _, want := range []string{"Mars 1", "Test Mission", "Total missions: 2", "Success rate: 50.0%"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
	if strings.Contains(output, "Voyager 1") {
		t.Errorf("output should not contain US-only missions, got: %s", output)
	}
}
