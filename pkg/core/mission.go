package core

import (
	"strconv"
	"strings"
)

// =============================================================================
// Mission
// =============================================================================

// Column names as they appear in the input file header.
const (
	ColumnYear      = "year"
	ColumnName      = "mission_name"
	ColumnType      = "mission_type"
	ColumnSuccess   = "success"
	ColumnCountries = "participating_countries"
	ColumnImpact    = "scientific_impact"
)

// Columns lists every column a mission file must provide, in display order.
var Columns = []string{
	ColumnYear,
	ColumnName,
	ColumnType,
	ColumnSuccess,
	ColumnCountries,
	ColumnImpact,
}

// CountrySeparator delimits country codes inside the participating_countries field.
const CountrySeparator = "/"

// Mission is one row of the input dataset.
// Missions are passed by value; nothing in the pipeline mutates a loaded record.
type Mission struct {
	Year      int    `json:"year"`
	Name      string `json:"mission_name"`
	Type      string `json:"mission_type"`
	Success   bool   `json:"success"`
	Countries string `json:"participating_countries"`
	Impact    int    `json:"scientific_impact"`
}

// CountryList splits the participating countries into individual codes.
func (m Mission) CountryList() []string {
	return strings.Split(m.Countries, CountrySeparator)
}

// IsColumn reports whether name is a known mission column.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Field returns the textual value of column for m.
// The second return value is false when the column does not exist.
func Field(m Mission, column string) (string, bool) {
	switch column {
	case ColumnYear:
		return strconv.Itoa(m.Year), true
	case ColumnName:
		return m.Name, true
	case ColumnType:
		return m.Type, true
	case ColumnSuccess:
		return strconv.FormatBool(m.Success), true
	case ColumnCountries:
		return m.Countries, true
	case ColumnImpact:
		return strconv.Itoa(m.Impact), true
	default:
		return "", false
	}
}
