// Package filter narrows mission sequences with year and column predicates.
//
// Every function returns a newly allocated slice holding the matching
// missions in their original order. Inputs are never modified.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/leapstack-labs/spacemissions/internal/predicate"
	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// Predicate decides whether a mission is kept.
type Predicate func(core.Mission) bool

// ColumnError reports a filter on a column missions do not have.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("Column '%s' not found in data.", e.Column)
}

// ThresholdError reports a scientific impact threshold that is not an integer.
type ThresholdError struct {
	Value string
	Err   error
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("Scientific impact must be a number, got %q.", e.Value)
}

func (e *ThresholdError) Unwrap() error {
	return e.Err
}

// Apply returns the missions for which keep returns true.
func Apply(missions []core.Mission, keep Predicate) []core.Mission {
	out := make([]core.Mission, 0, len(missions))
	for _, m := range missions {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// PrimeYears keeps missions launched in a prime-numbered year.
func PrimeYears(missions []core.Mission) []core.Mission {
	return Apply(missions, func(m core.Mission) bool {
		return predicate.IsPrime(m.Year)
	})
}

// DivisibleYears keeps missions whose year is divisible by divisor.
// A zero divisor fails with predicate.ErrZeroDivisor.
func DivisibleYears(missions []core.Mission, divisor int) ([]core.Mission, error) {
	if divisor == 0 {
		return nil, fmt.Errorf("divisible-by filter: %w", predicate.ErrZeroDivisor)
	}
	return Apply(missions, func(m core.Mission) bool {
		ok, _ := predicate.IsDivisibleBy(m.Year, divisor)
		return ok
	}), nil
}

// ByColumn filters on a single column using that column's comparison:
//   - success: exact boolean match ("true" case-insensitively, anything else is false)
//   - scientific_impact: minimum threshold, value must be an integer
//   - any other column: case-insensitive substring match
//
// Unknown columns and non-integer thresholds are not fatal: the input is
// returned unchanged together with a *ColumnError or *ThresholdError.
func ByColumn(missions []core.Mission, column, value string) ([]core.Mission, error) {
	if !core.IsColumn(column) {
		return missions, &ColumnError{Column: column}
	}

	switch column {
	case core.ColumnSuccess:
		want := strings.ToLower(value) == "true"
		return Apply(missions, func(m core.Mission) bool {
			return m.Success == want
		}), nil

	case core.ColumnImpact:
		threshold, err := strconv.Atoi(value)
		if err != nil {
			return missions, &ThresholdError{Value: value, Err: err}
		}
		return Apply(missions, func(m core.Mission) bool {
			return m.Impact >= threshold
		}), nil

	default:
		return Apply(missions, Contains(column, value)), nil
	}
}

// Contains returns a predicate matching missions whose column text contains
// value, comparing with Unicode case folding. Unknown columns never match.
func Contains(column, value string) Predicate {
	fold := cases.Fold()
	needle := fold.String(value)
	return func(m core.Mission) bool {
		text, ok := core.Field(m, column)
		if !ok {
			return false
		}
		return strings.Contains(fold.String(text), needle)
	}
}
