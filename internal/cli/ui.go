package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - typed input
	colorGreen = lipgloss.Color("35")  // Green - transformed output
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for the interactive mode heading.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleInput for the line being typed.
	styleInput = lipgloss.NewStyle().Foreground(colorWhite)

	// styleOutput for the live transform of the typed line.
	styleOutput = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	// styleDim for key hints and placeholders.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
