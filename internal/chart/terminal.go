package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarCells = 50
	minBarCells     = 10
	// year label, axis, gap and the trailing "100.0%" column
	rowOverhead = 4 + 2 + 1 + 7
)

// TerminalStyles colours the terminal chart.
type TerminalStyles struct {
	Title   lipgloss.Style
	Bar     lipgloss.Style
	Average lipgloss.Style
	Muted   lipgloss.Style
}

// NewTerminalStyles builds chart styles for a lipgloss renderer.
func NewTerminalStyles(r *lipgloss.Renderer) TerminalStyles {
	return TerminalStyles{
		Title:   r.NewStyle().Bold(true),
		Bar:     r.NewStyle().Foreground(lipgloss.Color("#4682B4")),
		Average: r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// RenderText draws c as horizontal bars scaled to [0, YMax], with the
// average marked by a vertical rule. width is the terminal width in cells;
// zero selects a default.
func RenderText(c *Chart, width int, st TerminalStyles) string {
	cells := defaultBarCells
	if width > 0 {
		cells = max(width-rowOverhead, minBarCells)
	}
	avgCol := min(scale(c.Average, cells), cells-1)

	var b strings.Builder
	b.WriteString(st.Title.Render(c.Title))
	b.WriteString("\n\n")

	for _, p := range c.Points {
		filled := scale(p.Rate, cells)
		fmt.Fprintf(&b, "%4d │%s %6s\n",
			p.Year,
			barRow(filled, avgCol, cells, st),
			strconv.FormatFloat(p.Rate, 'f', 1, 64)+"%")
	}

	b.WriteString("     └")
	b.WriteString(strings.Repeat("─", cells))
	b.WriteString("\n")
	fmt.Fprintf(&b, "      %s %s\n",
		st.Average.Render("│"),
		st.Muted.Render("Average "+strconv.FormatFloat(c.Average, 'f', 1, 64)+"%"))
	return b.String()
}

// scale maps a percentage onto a number of cells.
func scale(rate float64, cells int) int {
	n := int(math.Round(rate / YMax * float64(cells)))
	return min(max(n, 0), cells)
}

// barRow fills the first filled cells and overlays the average marker.
func barRow(filled, avgCol, cells int, st TerminalStyles) string {
	segment := func(from, to int) string {
		if to <= from {
			return ""
		}
		solid := min(max(filled-from, 0), to-from)
		out := ""
		if solid > 0 {
			out = st.Bar.Render(strings.Repeat("█", solid))
		}
		return out + strings.Repeat(" ", to-from-solid)
	}
	return segment(0, avgCol) + st.Average.Render("│") + segment(avgCol+1, cells)
}

// viewerKeys are the key bindings of the chart viewer.
type viewerKeys struct {
	Quit key.Binding
}

func (k viewerKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k viewerKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// viewer is the bubbletea model presenting a chart until dismissed.
type viewer struct {
	chart  *Chart
	styles TerminalStyles
	keys   viewerKeys
	help   help.Model
	width  int
}

func newViewer(c *Chart, st TerminalStyles) viewer {
	return viewer{
		chart:  c,
		styles: st,
		keys: viewerKeys{
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c", "enter"),
				key.WithHelp("q", "close"),
			),
		},
		help: help.New(),
	}
}

func (v viewer) Init() tea.Cmd { return nil }

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Quit) {
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
	}
	return v, nil
}

func (v viewer) View() string {
	return RenderText(v.chart, v.width, v.styles) + "\n" + v.help.View(v.keys) + "\n"
}

// ShowOptions controls how Show presents a chart.
type ShowOptions struct {
	In  io.Reader
	Out io.Writer
	// Interactive runs a full-screen viewer; otherwise the chart is printed once.
	Interactive bool
	Renderer    *lipgloss.Renderer
}

// Show presents c on the terminal.
func Show(c *Chart, opts ShowOptions) error {
	if c == nil || len(c.Points) == 0 {
		return fmt.Errorf("chart has no data")
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(opts.Out)
	}
	st := NewTerminalStyles(r)

	if !opts.Interactive {
		_, err := io.WriteString(opts.Out, RenderText(c, 0, st))
		return err
	}

	prog := tea.NewProgram(newViewer(c, st),
		tea.WithInput(opts.In),
		tea.WithOutput(opts.Out),
		tea.WithAltScreen(),
	)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("chart viewer: %w", err)
	}
	return nil
}
