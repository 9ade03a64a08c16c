// Package loader reads mission records from delimited text files.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// DefaultDelimiter separates fields when no delimiter is configured.
const DefaultDelimiter = ','

// Options controls how a mission file is read.
type Options struct {
	// Delimiter separates fields. Zero selects a delimiter from the file
	// extension: tab for .tsv, comma otherwise.
	Delimiter rune
	Logger    *slog.Logger
}

// Error is returned when the mission file cannot be opened or read.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("file '%s' not found", e.Path)
	}
	return fmt.Sprintf("loading '%s': %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ParseError describes a row whose values could not be converted.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Column == "" {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s %q: %v", loc, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads every mission in the file at path.
// On any failure no records are returned.
func Load(path string, opts Options) ([]core.Mission, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts.Delimiter = '\t'
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the user on purpose
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	missions, err := Parse(f, opts)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, &Error{Path: path, Err: err}
	}

	logger.Debug("loaded missions", "path", path, "count", len(missions))
	return missions, nil
}

// Parse reads missions from r. The first row must be a header naming every
// column in core.Columns; extra columns are ignored.
func Parse(r io.Reader, opts Options) ([]core.Mission, error) {
	reader := csv.NewReader(r)
	reader.Comma = DefaultDelimiter
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Line: 1, Err: errors.New("missing header row")}
		}
		return nil, toParseError(err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var missions []core.Mission
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, toParseError(err)
		}

		line, _ := reader.FieldPos(0)
		m, err := parseRecord(record, index, line)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}

	return missions, nil
}

// headerIndex maps each required column to its position in the header.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range core.Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{
			Line: 1,
			Err:  fmt.Errorf("header is missing required columns: %s", strings.Join(missing, ", ")),
		}
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int, line int) (core.Mission, error) {
	year, err := parseInt(record, index, core.ColumnYear, line)
	if err != nil {
		return core.Mission{}, err
	}
	impact, err := parseInt(record, index, core.ColumnImpact, line)
	if err != nil {
		return core.Mission{}, err
	}

	return core.Mission{
		Year:      year,
		Name:      record[index[core.ColumnName]],
		Type:      record[index[core.ColumnType]],
		Success:   strings.ToLower(record[index[core.ColumnSuccess]]) == "true",
		Countries: record[index[core.ColumnCountries]],
		Impact:    impact,
	}, nil
}

func parseInt(record []string, index map[string]int, column string, line int) (int, error) {
	raw := record[index[column]]
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Line: line, Column: column, Value: raw, Err: errors.Unwrap(err)}
	}
	return n, nil
}

// toParseError converts csv reader errors (quoting, field counts) into ParseErrors.
func toParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return err
}
