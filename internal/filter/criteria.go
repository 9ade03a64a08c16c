package filter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// Criteria holds every filter requested for one run. Zero values mean
// "not requested"; pointer fields distinguish an explicit zero.
type Criteria struct {
	Prime       bool
	DivisibleBy *int
	Type        string
	Country     string
	Success     string
	Impact      *string
}

// Result is the outcome of running Criteria over a mission set.
type Result struct {
	Missions []core.Mission
	// Warnings holds non-fatal filter problems; the affected filter was skipped.
	Warnings []error
}

// IsEmpty reports whether no filter is requested.
func (c Criteria) IsEmpty() bool {
	return !c.Prime && c.DivisibleBy == nil && c.Type == "" &&
		c.Country == "" && c.Success == "" && c.Impact == nil
}

// Describe lists the active filters in application order.
func (c Criteria) Describe() []string {
	var parts []string
	if c.Prime {
		parts = append(parts, "prime years")
	}
	if c.DivisibleBy != nil {
		parts = append(parts, fmt.Sprintf("years divisible by %d", *c.DivisibleBy))
	}
	if c.Type != "" {
		parts = append(parts, fmt.Sprintf("type contains %q", c.Type))
	}
	if c.Country != "" {
		parts = append(parts, fmt.Sprintf("country contains %q", c.Country))
	}
	if c.Success != "" {
		parts = append(parts, "success = "+strings.ToLower(c.Success))
	}
	if c.Impact != nil {
		parts = append(parts, "impact >= "+*c.Impact)
	}
	return parts
}

// Run applies the requested filters in a fixed order, each to the output of
// the previous one: prime years, divisible years, type, country, success,
// impact. Only a zero divisor stops the run.
func (c Criteria) Run(missions []core.Mission, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	res := &Result{Missions: missions}
	step := func(name string, before int) {
		logger.Debug("filter applied", "filter", name, "before", before, "after", len(res.Missions))
	}

	if c.Prime {
		before := len(res.Missions)
		res.Missions = PrimeYears(res.Missions)
		step("prime", before)
	}

	if c.DivisibleBy != nil {
		before := len(res.Missions)
		filtered, err := DivisibleYears(res.Missions, *c.DivisibleBy)
		if err != nil {
			return nil, err
		}
		res.Missions = filtered
		step("divisible-by", before)
	}

	columns := []struct {
		column string
		value  string
		set    bool
	}{
		{core.ColumnType, c.Type, c.Type != ""},
		{core.ColumnCountries, c.Country, c.Country != ""},
		{core.ColumnSuccess, c.Success, c.Success != ""},
		{core.ColumnImpact, deref(c.Impact), c.Impact != nil},
	}
	for _, col := range columns {
		if !col.set {
			continue
		}
		before := len(res.Missions)
		filtered, err := ByColumn(res.Missions, col.column, col.value)
		if err != nil {
			logger.Debug("filter skipped", "column", col.column, "error", err)
			res.Warnings = append(res.Warnings, err)
		}
		res.Missions = filtered
		step(col.column, before)
	}

	return res, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
