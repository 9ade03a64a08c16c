package output

import "github.com/charmbracelet/lipgloss"

// Palette colours shared by text output and the terminal chart.
const (
	ColorPrimary = lipgloss.Color("#4682B4") // steel blue
	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#6B7280")
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Key     lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bar     lipgloss.Style
	Average lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Header:  r.NewStyle().Bold(true),
		Key:     r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Error:   r.NewStyle().Foreground(ColorError),
		Muted:   r.NewStyle().Foreground(ColorMuted),
		Bar:     r.NewStyle().Foreground(ColorPrimary),
		Average: r.NewStyle().Foreground(ColorError).Bold(true),
	}
}
