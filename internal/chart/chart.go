// Package chart computes per-year success rates and draws them as a bar chart,
// either to an image file or to the terminal.
package chart

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// YMax is the fixed upper bound of the rate axis, in percent.
const YMax = 105.0

// YearRate is the success rate of the missions launched in one year.
type YearRate struct {
	Year      int     `json:"year"`
	Total     int     `json:"total"`
	Successes int     `json:"successes"`
	Rate      float64 `json:"rate"`
}

// Chart is the data behind a success-by-year bar chart.
type Chart struct {
	Title  string
	Points []YearRate
	// Average is the unweighted mean of the per-year rates, not the overall
	// success rate across all missions.
	Average float64
}

// SuccessByYear groups missions by year and returns one rate per year,
// in ascending year order.
func SuccessByYear(missions []core.Mission) []YearRate {
	byYear := make(map[int]*YearRate)
	for _, m := range missions {
		yr, ok := byYear[m.Year]
		if !ok {
			yr = &YearRate{Year: m.Year}
			byYear[m.Year] = yr
		}
		yr.Total++
		if m.Success {
			yr.Successes++
		}
	}

	points := make([]YearRate, 0, len(byYear))
	for _, yr := range byYear {
		if yr.Total > 0 {
			yr.Rate = float64(yr.Successes) / float64(yr.Total) * 100
		}
		points = append(points, *yr)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})
	return points
}

// MeanRate returns the unweighted mean of the rates, or 0 for no points.
func MeanRate(points []YearRate) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Rate
	}
	return sum / float64(len(points))
}

// Build prepares a chart for missions. It returns false when there is
// nothing to plot.
func Build(missions []core.Mission) (*Chart, bool) {
	if len(missions) == 0 {
		return nil, false
	}
	points := SuccessByYear(missions)
	return &Chart{
		Title:   DefaultTitle(points),
		Points:  points,
		Average: MeanRate(points),
	}, true
}

// DefaultTitle names the chart after the span of years it covers.
func DefaultTitle(points []YearRate) string {
	if len(points) == 0 {
		return "Space Mission Success Rate by Year"
	}
	first, last := points[0].Year, points[len(points)-1].Year
	if first == last {
		return fmt.Sprintf("Space Mission Success Rate by Year (%d)", first)
	}
	return fmt.Sprintf("Space Mission Success Rate by Year (%d-%d)", first, last)
}
