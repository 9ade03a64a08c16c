package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// SampleCSV is a six-mission dataset covering every filter kind.
const SampleCSV = `year,mission_name,mission_type,success,participating_countries,scientific_impact
1971,Mars 1,Mars,True,USSR,5
1972,Pioneer 10,Jupiter,True,USA,8
1973,Pioneer 11,Jupiter,True,USA,7
1975,Viking 1,Mars,True,USA,9
1977,Voyager 1,Outer Planets,True,USA,10
1980,Test Mission,Earth,False,USSR,2
`

// SampleMissions returns the records encoded in SampleCSV.
func SampleMissions() []core.Mission {
	return []core.Mission{
		{Year: 1971, Name: "Mars 1", Type: "Mars", Success: true, Countries: "USSR", Impact: 5},
		{Year: 1972, Name: "Pioneer 10", Type: "Jupiter", Success: true, Countries: "USA", Impact: 8},
		{Year: 1973, Name: "Pioneer 11", Type: "Jupiter", Success: true, Countries: "USA", Impact: 7},
		{Year: 1975, Name: "Viking 1", Type: "Mars", Success: true, Countries: "USA", Impact: 9},
		{Year: 1977, Name: "Voyager 1", Type: "Outer Planets", Success: true, Countries: "USA", Impact: 10},
		{Year: 1980, Name: "Test Mission", Type: "Earth", Success: false, Countries: "USSR", Impact: 2},
	}
}

// WriteFile writes content to name inside a fresh temp directory and returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// WriteSampleData writes SampleCSV to a temp file and returns its path.
func WriteSampleData(t testing.TB) string {
	t.Helper()
	return WriteFile(t, "missions.csv", SampleCSV)
}

// Names returns the mission names in order, for compact assertions.
func Names(missions []core.Mission) []string {
	names := make([]string, 0, len(missions))
	for _, m := range missions {
		names = append(names, m.Name)
	}
	return names
}

// Years returns the mission years in order.
func Years(missions []core.Mission) []int {
	years := make([]int, 0, len(missions))
	for _, m := range missions {
		years = append(years, m.Year)
	}
	return years
}
