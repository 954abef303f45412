package menu

import "github.com/charmbracelet/lipgloss"

// Styles decorates transcript lines. Styling never changes the text itself.
type Styles struct {
	Heading lipgloss.Style
	Option  lipgloss.Style
	Result  lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the transcript styles for a renderer. The renderer's
// colour profile decides whether any escape codes are emitted.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Heading: r.NewStyle().Bold(true),
		Option:  r.NewStyle(),
		Result:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   r.NewStyle().Faint(true),
	}
}
