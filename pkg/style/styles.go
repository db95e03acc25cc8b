package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	CommandStyle = lipgloss.NewStyle().
			Foreground(CommandColor).
			Background(CommandBgColor).
			Padding(0, 1)
)

// Mod styles
var (
	ModStyle = lipgloss.NewStyle().
			Foreground(ModColor)

	SelectedModStyle = lipgloss.NewStyle().
				Foreground(SelectedColor).
				Bold(true)

	// ReservedModStyle marks z_launcher in launch output
	ReservedModStyle = lipgloss.NewStyle().
				Foreground(ReservedColor).
				Italic(true)

	MergeStyle = lipgloss.NewStyle().
			Foreground(MergeColor).
			Bold(true)
)

// Indicators
var (
	SelectedIndicator   = SuccessStyle.Render("✓")
	UnselectedIndicator = MutedStyle.Render("○")
	WarningIndicator    = WarningStyle.Bold(true).Render("!")
	ErrorIndicator      = ErrorStyle.Render("✗")
)

// Bold renders s in bold
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
