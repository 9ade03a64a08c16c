package filter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/spacemissions/internal/predicate"
	"github.com/leapstack-labs/spacemissions/internal/testutil"
)

func intPtr(n int) *int { return &n }
func strPtr(s string) *string { return &s }

func TestCriteria_Run(t *testing.T) {
	tests := []struct {
		name         string
		criteria     Criteria
		want         []string
		wantWarnings int
	}{
		{
			name:     "no filters",
			criteria: Criteria{},
			want:     []string{"Mars 1", "Pioneer 10", "Pioneer 11", "Viking 1", "Voyager 1", "Test Mission"},
		},
		{
			name:     "type and country intersect",
			criteria: Criteria{Type: "Mars", Country: "USA"},
			want:     []string{"Viking 1"},
		},
		{
			name:     "divisible then success",
			criteria: Criteria{DivisibleBy: intPtr(5), Success: "true"},
			want:     []string{"Viking 1"},
		},
		{
			name:     "prime then impact",
			criteria: Criteria{Prime: true, Impact: strPtr("8")},
			want:     []string{},
		},
		{
			name:     "impact zero keeps everything",
			criteria: Criteria{Impact: strPtr("0")},
			want:     []string{"Mars 1", "Pioneer 10", "Pioneer 11", "Viking 1", "Voyager 1", "Test Mission"},
		},
		{
			name:         "bad threshold is skipped",
			criteria:     Criteria{Type: "Jupiter", Impact: strPtr("lots")},
			want:         []string{"Pioneer 10", "Pioneer 11"},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.criteria.Run(testutil.SampleMissions(), testutil.NewTestLogger(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, testutil.Names(res.Missions))
			assert.Len(t, res.Warnings, tt.wantWarnings)
		})
	}
}

func TestCriteria_Run_ZeroDivisor(t *testing.T) {
	res, err := Criteria{DivisibleBy: intPtr(0)}.Run(testutil.SampleMissions(), nil)
	require.ErrorIs(t, err, predicate.ErrZeroDivisor)
	assert.Nil(t, res)
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, Criteria{Prime: true}.IsEmpty())
	assert.False(t, Criteria{DivisibleBy: intPtr(0)}.IsEmpty())
	assert.False(t, Criteria{Impact: strPtr("")}.IsEmpty())
}

func TestCriteria_Describe(t *testing.T) {
	c := Criteria{
		Prime:       true,
		DivisibleBy: intPtr(3),
		Type:        "Mars",
		Country:     "USA",
		Success:     "TRUE",
		Impact:      strPtr("7"),
	}

	assert.Equal(t, []string{
		"prime years",
		"years divisible by 3",
		`type contains "Mars"`,
		`country contains "USA"`,
		"success = true",
		"impact >= 7",
	}, c.Describe())
	assert.Empty(t, Criteria{}.Describe())
}

func TestCriteria_Run_WarningsAreReturnedNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	res, err := Criteria{Impact: strPtr("high")}.Run(testutil.SampleMissions(), logger)
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	var te *ThresholdError
	assert.ErrorAs(t, res.Warnings[0], &te)
	assert.Empty(t, buf.String(), "warnings are left to the caller to report")
}
