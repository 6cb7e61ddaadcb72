package render

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorReference = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorBody      = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#EEEEEE"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}

	referenceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorReference)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colorBody).
			PaddingLeft(1)

	courtesyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true).
			PaddingLeft(1)

	snippetStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	successStyle = lipgloss.NewStyle().
			Foreground(colorReference)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
