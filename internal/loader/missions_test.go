package loader

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/spacemissions/internal/testutil"
)

func TestLoad_SampleData(t *testing.T) {
	path := testutil.WriteSampleData(t)

	missions, err := Load(path, Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)
	require.Len(t, missions, 6)

	assert.Equal(t, testutil.SampleMissions(), missions)

	first := missions[0]
	assert.Equal(t, 1971, first.Year)
	assert.Equal(t, "Mars 1", first.Name)
	assert.True(t, first.Success)
	assert.Equal(t, 5, first.Impact)

	last := missions[5]
	assert.Equal(t, 1980, last.Year)
	assert.Equal(t, "Test Mission", last.Name)
	assert.False(t, last.Success)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	missions, err := Load(path, Options{})
	require.Error(t, err)
	assert.Nil(t, missions)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.csv")
	assert.Contains(t, err.Error(), "not found")

	var loadErr *Error
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_InvalidRows(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLine  int
		errSubstr string
	}{
		{
			name: "non-integer year",
			content: "year,mission_name,mission_type,success,participating_countries,scientific_impact\n" +
				"1971,Mars 1,Mars,True,USSR,5\n" +
				"nineteen,Mars 2,Mars,True,USSR,5\n",
			wantLine:  3,
			errSubstr: "invalid year",
		},
		{
			name: "non-integer impact",
			content: "year,mission_name,mission_type,success,participating_countries,scientific_impact\n" +
				"1971,Mars 1,Mars,True,USSR,high\n",
			wantLine:  2,
			errSubstr: "invalid scientific_impact",
		},
		{
			name: "ragged row",
			content: "year,mission_name,mission_type,success,participating_countries,scientific_impact\n" +
				"1971,Mars 1,Mars,True\n",
			wantLine:  2,
			errSubstr: "wrong number of fields",
		},
		{
			name:      "missing column",
			content:   "year,mission_name,mission_type,success,scientific_impact\n1971,Mars 1,Mars,True,5\n",
			wantLine:  1,
			errSubstr: "participating_countries",
		},
		{
			name:      "empty file",
			content:   "",
			wantLine:  1,
			errSubstr: "missing header row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, "bad.csv", tt.content)

			missions, err := Load(path, Options{})
			require.Error(t, err)
			assert.Nil(t, missions, "no partial results on failure")

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantLine, pe.Line)
			assert.Equal(t, path, pe.Path)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestParse_SuccessCoercion(t *testing.T) {
	content := "year,mission_name,mission_type,success,participating_countries,scientific_impact\n" +
		"1970,A,Mars,TRUE,USA,1\n" +
		"1970,B,Mars,true,USA,1\n" +
		"1970,C,Mars,False,USA,1\n" +
		"1970,D,Mars,yes,USA,1\n" +
		"1970,E,Mars,,USA,1\n"

	missions, err := Parse(strings.NewReader(content), Options{})
	require.NoError(t, err)

	got := make([]bool, 0, len(missions))
	for _, m := range missions {
		got = append(got, m.Success)
	}
	assert.Equal(t, []bool{true, true, false, false, false}, got)
}

func TestParse_ColumnOrderAndExtras(t *testing.T) {
	content := "scientific_impact, year ,notes,participating_countries,success,mission_type,mission_name\n" +
		"9, 1975 ,ignored,USA/FRA,True,Mars,Viking 1\n"

	missions, err := Parse(strings.NewReader(content), Options{})
	require.NoError(t, err)
	require.Len(t, missions, 1)

	m := missions[0]
	assert.Equal(t, 1975, m.Year)
	assert.Equal(t, 9, m.Impact)
	assert.Equal(t, "Viking 1", m.Name)
	assert.Equal(t, "USA/FRA", m.Countries)
	assert.Equal(t, []string{"USA", "FRA"}, m.CountryList())
}

func TestLoad_TabDelimited(t *testing.T) {
	content := strings.ReplaceAll(testutil.SampleCSV, ",", "\t")

	t.Run("inferred from extension", func(t *testing.T) {
		path := testutil.WriteFile(t, "missions.tsv", content)
		missions, err := Load(path, Options{})
		require.NoError(t, err)
		assert.Equal(t, testutil.SampleMissions(), missions)
	})

	t.Run("explicit delimiter", func(t *testing.T) {
		path := testutil.WriteFile(t, "missions.txt", content)
		missions, err := Load(path, Options{Delimiter: '\t'})
		require.NoError(t, err)
		assert.Len(t, missions, 6)
	})
}

func TestParse_HeaderOnly(t *testing.T) {
	missions, err := Parse(strings.NewReader("year,mission_name,mission_type,success,participating_countries,scientific_impact\n"), Options{})
	require.NoError(t, err)
	assert.Empty(t, missions)
}
