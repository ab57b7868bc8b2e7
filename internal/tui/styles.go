package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ------- styling helpers (Lip Gloss) -------
var (
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	accentStyle   lipgloss.Style
	timeStyle     lipgloss.Style
	mutedStyle    lipgloss.Style
	loreStyle     lipgloss.Style
	errorStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	helpStyle     lipgloss.Style
	modalStyle    lipgloss.Style
	formStyle     lipgloss.Style
	labelStyle    lipgloss.Style
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

type palette struct {
	primary, secondary, accent, muted, danger lipgloss.TerminalColor
	border                                    lipgloss.Border
}

func paletteFor(theme string) palette {
	switch strings.ToLower(theme) {
	case "neon":
		return palette{
			primary:   ac("129", "213"),
			secondary: ac("30", "87"),
			accent:    ac("166", "227"),
			muted:     ac("242", "244"),
			danger:    ac("160", "203"),
			border:    lipgloss.RoundedBorder(),
		}
	case "mono":
		return palette{
			primary:   lipgloss.NoColor{},
			secondary: lipgloss.NoColor{},
			accent:    lipgloss.NoColor{},
			muted:     lipgloss.NoColor{},
			danger:    lipgloss.NoColor{},
			border:    lipgloss.NormalBorder(),
		}
	default:
		return palette{
			primary:   ac("160", "203"), // card red
			secondary: ac("24", "110"),
			accent:    ac("27", "75"),
			muted:     ac("240", "245"),
			danger:    ac("160", "196"),
			border:    lipgloss.RoundedBorder(),
		}
	}
}

// applyTheme rebuilds every style for the named theme.
func applyTheme(theme string) {
	p := paletteFor(theme)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.primary)
	subtitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.secondary)
	accentStyle = lipgloss.NewStyle().Foreground(p.accent)
	timeStyle = lipgloss.NewStyle().Bold(true).Foreground(p.primary)
	mutedStyle = lipgloss.NewStyle().Foreground(p.muted)
	loreStyle = lipgloss.NewStyle().Italic(true).Foreground(p.secondary)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(p.danger)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	helpStyle = lipgloss.NewStyle().Foreground(p.muted)
	modalStyle = lipgloss.NewStyle().Border(p.border).BorderForeground(p.primary).Padding(0, 1)
	formStyle = lipgloss.NewStyle().Border(p.border).BorderForeground(p.secondary).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(p.secondary)
}

func init() { applyTheme("classic") }

// applyColorProfilePreference honors NO_COLOR and otherwise trusts the
// terminal. CLICOLOR is ignored; it tends to disable colour in a TUI.
func applyColorProfilePreference(theme string) {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" || strings.EqualFold(theme, "mono") {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
