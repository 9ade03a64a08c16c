// Package report renders mission listings and aggregate statistics.
package report

import (
	"sort"

	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// Count is one entry of a frequency breakdown.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary holds aggregate statistics over a non-empty mission set.
type Summary struct {
	Total         int     `json:"total"`
	FirstYear     int     `json:"first_year"`
	LastYear      int     `json:"last_year"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"`
	AverageImpact float64 `json:"average_impact"`
	Types         []Count `json:"mission_types"`
	Countries     []Count `json:"countries"`
}

// Summarize computes statistics for missions.
// It returns false when there is nothing to summarize.
func Summarize(missions []core.Mission) (*Summary, bool) {
	if len(missions) == 0 {
		return nil, false
	}

	s := &Summary{
		Total:     len(missions),
		FirstYear: missions[0].Year,
		LastYear:  missions[0].Year,
	}

	impact := 0
	types := newCounter()
	countries := newCounter()
	for _, m := range missions {
		s.FirstYear = min(s.FirstYear, m.Year)
		s.LastYear = max(s.LastYear, m.Year)
		if m.Success {
			s.Successes++
		}
		impact += m.Impact
		types.add(m.Type)
		for _, c := range m.CountryList() {
			countries.add(c)
		}
	}

	s.SuccessRate = float64(s.Successes) / float64(s.Total) * 100
	s.AverageImpact = float64(impact) / float64(s.Total)
	s.Types = types.mostCommon()
	s.Countries = countries.mostCommon()

	return s, true
}

// counter tallies names, remembering the order each was first seen.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// mostCommon returns counts in descending order; ties keep first-seen order.
func (c *counter) mostCommon() []Count {
	out := make([]Count, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Count{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
