package plotui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette, matched to render.TerminalTheme.
var (
	colorBG      = c("#080e0b")
	panelBG      = c("#1a2a20")
	toolbarColor = c("#00ffc8")
	footerColor  = c("#8aa89a")
	accentColor  = c("#ddaa44")
	modalBorder  = c("#00ffee")
	modalBG      = c("#0a1a15")
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor).
		Background(colorBG)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(toolbarColor).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelValueStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	panelPadStyle = lipgloss.NewStyle().
			Background(panelBG)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(modalBorder).
			Background(modalBG).
			Padding(1, 3).
			AlignHorizontal(lipgloss.Center)

	modalPhraseStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Background(modalBG).
				Bold(true)

	modalTextStyle = lipgloss.NewStyle().
			Foreground(toolbarColor).
			Background(modalBG)

	modalKeyStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(modalBG)
)
