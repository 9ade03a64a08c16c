package report

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clitestutil "github.com/leapstack-labs/spacemissions/internal/cli/testutil"
	"github.com/leapstack-labs/spacemissions/internal/testutil"
)

func TestReporter_MissionsText(t *testing.T) {
	tr := clitestutil.NewTestRendererPlainText()
	New(tr.Renderer).Missions(testutil.SampleMissions())

	out := tr.Output()
	clitestutil.AssertNoANSI(t, out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8, "header, separator and one line per mission")

	header := lines[0]
	for _, col := range []string{"Year", "Mission", "Type", "Success", "Countries", "Impact"} {
		assert.Contains(t, header, col)
	}
	assert.True(t, strings.HasPrefix(lines[1], "---"), "separator line: %q", lines[1])

	assert.Contains(t, lines[2], "1971")
	assert.Contains(t, lines[2], "Mars 1")
	assert.Contains(t, lines[2], GlyphSuccess)
	assert.Contains(t, lines[7], "Test Mission")
	assert.Contains(t, lines[7], GlyphFailure)

	assert.Equal(t, strings.Index(lines[2], "Mars 1"), strings.Index(lines[7], "Test Mission"),
		"columns are aligned")
}

func TestReporter_MissionsMarkdown(t *testing.T) {
	tr := clitestutil.NewTestRendererMarkdown()
	New(tr.Renderer).Missions(testutil.SampleMissions()[:2])

	out := tr.Output()
	assert.Contains(t, out, "| Year | Mission")
	assert.Contains(t, out, "| 1971 | Mars 1 |")
	assert.Contains(t, out, "| 1972 | Pioneer 10 |")
	clitestutil.AssertValidMarkdown(t, out)
}

func TestReporter_MissionsEmpty(t *testing.T) {
	tr := clitestutil.NewTestRendererPlainText()
	New(tr.Renderer).Missions(nil)

	assert.Equal(t, NoMatchesMessage+"\n", tr.Output())
}

func TestReporter_SummaryText(t *testing.T) {
	tr := clitestutil.NewTestRendererPlainText()
	s, _ := Summarize(testutil.SampleMissions())

	New(tr.Renderer).Summary(s)

	out := tr.Output()
	for _, want := range []string{
		"=== Summary Statistics ===",
		"Total missions: 6",
		"Years covered: 1971 to 1980",
		"Success rate: 83.3%",
		"Average scientific impact: 6.8",
		"Mission types breakdown:",
		"  Mars: 2 missions",
		"Participating countries breakdown:",
		"  USA: 4 missions",
		"  USSR: 2 missions",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Mars: 2"), strings.Index(out, "Jupiter: 2"), "ties keep first-seen order")
}

func TestReporter_SummaryMarkdown(t *testing.T) {
	tr := clitestutil.NewTestRendererMarkdown()
	s, _ := Summarize(testutil.SampleMissions())

	New(tr.Renderer).Summary(s)

	out := tr.Output()
	assert.Contains(t, out, "## Summary Statistics")
	assert.Contains(t, out, "**Success rate:** 83.3%")
	assert.Contains(t, out, "### Mission types breakdown")
	assert.Contains(t, out, "- Outer Planets: 1 missions")
	clitestutil.AssertValidMarkdown(t, out)
}

func TestReporter_SummaryNil(t *testing.T) {
	tr := clitestutil.NewTestRendererPlainText()
	New(tr.Renderer).Summary(nil)
	assert.Empty(t, tr.Output())
}

func TestReporter_Warnings(t *testing.T) {
	tr := clitestutil.NewTestRendererPlainText()
	New(tr.Renderer).Warnings([]error{errors.New("Column 'x' not found in data.")})

	assert.Empty(t, tr.Output())
	assert.Equal(t, "Error: Column 'x' not found in data.\n", tr.ErrorOutput())
}

func TestReporter_JSON(t *testing.T) {
	tr := clitestutil.NewTestRendererJSON()
	missions := testutil.SampleMissions()[:2]
	s, _ := Summarize(missions)

	err := New(tr.Renderer).JSON(Document{
		Source:   "missions.csv",
		Missions: missions,
		Summary:  s,
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &doc))
	assert.Equal(t, "missions.csv", doc["source"])
	assert.Equal(t, float64(2), doc["count"])
	assert.Equal(t, []any{}, doc["filters"])
	assert.NotContains(t, doc, "warnings")

	first := doc["missions"].([]any)[0].(map[string]any)
	assert.Equal(t, "Mars 1", first["mission_name"])
	assert.Equal(t, true, first["success"])

	summary := doc["summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["total"])
}

func TestReporter_JSONEmpty(t *testing.T) {
	tr := clitestutil.NewTestRendererJSON()

	require.NoError(t, New(tr.Renderer).JSON(Document{Source: "x.csv"}))

	var doc Document
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &doc))
	assert.Equal(t, 0, doc.Count)
	assert.NotNil(t, doc.Missions)
	assert.Nil(t, doc.Summary)
}
