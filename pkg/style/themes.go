package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Every color adapts to light and dark terminals.
var (
	// Text
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F3F4F6"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#D6D3D1"}

	// Outcomes
	SuccessColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#67E8F9"}

	// Command lines are shown on a tinted background
	CommandColor   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"}
	CommandBgColor = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#1E293B"}
)

// Mod states
var (
	ModColor      = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"}
	SelectedColor = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	ReservedColor = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	MergeColor    = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}
)
