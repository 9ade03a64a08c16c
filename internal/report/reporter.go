package report

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leapstack-labs/spacemissions/internal/cli/output"
	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// NoMatchesMessage is printed instead of an empty table.
const NoMatchesMessage = "No missions match the specified criteria."

// Success glyphs shown in the listing.
const (
	GlyphSuccess = "✓"
	GlyphFailure = "✗"
)

// columnWidths are the minimum widths of the listing columns.
var columnWidths = []int{6, 25, 15, 8, 20, 10}

var listingHeader = table.Row{"Year", "Mission", "Type", "Success", "Countries", "Impact"}

// listingStyle is a borderless fixed-width layout with a dashed header rule.
var listingStyle = func() table.Style {
	s := table.StyleDefault
	s.Name = "Listing"
	s.Box.PaddingLeft = ""
	s.Box.PaddingRight = " "
	s.Box.MiddleHorizontal = "-"
	s.Format.Header = text.FormatDefault
	s.Options = table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateHeader:  true,
		SeparateRows:    false,
	}
	return s
}()

// Document is the JSON form of a full report.
type Document struct {
	Source   string         `json:"source"`
	Filters  []string       `json:"filters"`
	Count    int            `json:"count"`
	Missions []core.Mission `json:"missions"`
	Summary  *Summary       `json:"summary,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

// Reporter prints listings and summaries through an output.Renderer.
type Reporter struct {
	r *output.Renderer
}

// New creates a Reporter.
func New(r *output.Renderer) *Reporter {
	return &Reporter{r: r}
}

// Missions prints the mission listing, or a notice when there is nothing to list.
func (rep *Reporter) Missions(missions []core.Mission) {
	if len(missions) == 0 {
		rep.r.Println(NoMatchesMessage)
		return
	}

	t := table.NewWriter()
	t.AppendHeader(listingHeader)
	configs := make([]table.ColumnConfig, len(columnWidths))
	for i, w := range columnWidths {
		configs[i] = table.ColumnConfig{Number: i + 1, WidthMin: w}
	}
	t.SetColumnConfigs(configs)

	markdown := rep.r.EffectiveMode() == output.ModeMarkdown
	for _, m := range missions {
		t.AppendRow(table.Row{
			m.Year,
			m.Name,
			m.Type,
			rep.glyph(m.Success, markdown),
			m.Countries,
			m.Impact,
		})
	}

	rep.r.Println("")
	if markdown {
		rep.r.Println(t.RenderMarkdown())
		return
	}
	t.SetStyle(listingStyle)
	rep.r.Println(t.Render())
}

func (rep *Reporter) glyph(success, plain bool) string {
	styles := rep.r.Styles()
	switch {
	case success && plain:
		return GlyphSuccess
	case plain:
		return GlyphFailure
	case success:
		return styles.Success.Render(GlyphSuccess)
	default:
		return styles.Error.Render(GlyphFailure)
	}
}

// Summary prints aggregate statistics.
func (rep *Reporter) Summary(s *Summary) {
	if s == nil {
		return
	}

	rep.r.Println("")
	rep.r.Header(2, "Summary Statistics")

	if rep.r.EffectiveMode() == output.ModeMarkdown {
		rep.r.Println("")
		rep.r.Println(output.FormatKeyValue("Total missions", strconv.Itoa(s.Total)))
		rep.r.Println(output.FormatKeyValue("Years covered", fmt.Sprintf("%d to %d", s.FirstYear, s.LastYear)))
		rep.r.Println(output.FormatKeyValue("Success rate", FormatPercent(s.SuccessRate)))
		rep.r.Println(output.FormatKeyValue("Average scientific impact", FormatDecimal(s.AverageImpact)))
		rep.breakdownMarkdown("Mission types breakdown", s.Types)
		rep.breakdownMarkdown("Participating countries breakdown", s.Countries)
		return
	}

	rep.r.Printf("Total missions: %d\n", s.Total)
	rep.r.Printf("Years covered: %d to %d\n", s.FirstYear, s.LastYear)
	rep.r.Printf("Success rate: %s\n", FormatPercent(s.SuccessRate))
	rep.r.Printf("Average scientific impact: %s\n", FormatDecimal(s.AverageImpact))
	rep.breakdownText("Mission types breakdown", s.Types)
	rep.breakdownText("Participating countries breakdown", s.Countries)
}

func (rep *Reporter) breakdownText(title string, counts []Count) {
	rep.r.Println("")
	rep.r.Println(rep.r.Styles().Key.Render(title + ":"))
	for _, c := range counts {
		rep.r.Printf("  %s: %d missions\n", c.Name, c.Count)
	}
}

func (rep *Reporter) breakdownMarkdown(title string, counts []Count) {
	rep.r.Println("")
	rep.r.Println(output.FormatHeader(3, title))
	rep.r.Println("")
	for _, c := range counts {
		rep.r.Println(output.FormatListItem(fmt.Sprintf("%s: %d missions", c.Name, c.Count)))
	}
}

// Warnings prints non-fatal filter problems.
func (rep *Reporter) Warnings(errs []error) {
	for _, err := range errs {
		rep.r.Error(err.Error())
	}
}

// JSON writes the whole report as one JSON document.
func (rep *Reporter) JSON(doc Document) error {
	if doc.Missions == nil {
		doc.Missions = []core.Mission{}
	}
	if doc.Filters == nil {
		doc.Filters = []string{}
	}
	doc.Count = len(doc.Missions)
	return rep.r.JSON(doc)
}

// FormatPercent formats a percentage to one decimal place.
func FormatPercent(v float64) string {
	return FormatDecimal(v) + "%"
}

// FormatDecimal formats a value to one decimal place.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
