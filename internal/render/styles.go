package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	BallStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	SuperStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	HotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	ColdStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	UpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	DownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// DisableColor strips every style down to plain text. Used for --no-color
// and for output that is piped or compared in tests.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
