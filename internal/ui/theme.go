package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// Renderers take a Theme value; nothing reads a package-level theme.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
	SymOK, SymFail, SymBullet                     string
}

// ThemeByName returns the named theme, falling back to classic.
func ThemeByName(name string) Theme {
	plain := lipgloss.NewStyle()
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       plain.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       plain.Foreground(lipgloss.Color("8")),
			Accent:      plain.Foreground(lipgloss.Color("14")),
			Success:     plain.Foreground(lipgloss.Color("10")),
			Error:       plain.Bold(true).Foreground(lipgloss.Color("9")),
			Pending:     plain.Foreground(lipgloss.Color("11")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔", SymFail: "✖", SymBullet: "•",
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Border:      lipgloss.Border{Top: "-", Bottom: "-", Left: "|", Right: "|", TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+"},
			BorderColor: lipgloss.NoColor{},
			SymOK:       "ok", SymFail: "x", SymBullet: "-",
		}
	default:
		return Theme{
			Name:        "classic",
			Title:       plain.Bold(true),
			Muted:       plain.Faint(true),
			Accent:      plain.Foreground(lipgloss.Color("12")),
			Success:     plain.Foreground(lipgloss.Color("42")),
			Error:       plain.Bold(true).Foreground(lipgloss.Color("9")),
			Pending:     plain.Foreground(lipgloss.Color("214")),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color("8"),
			SymOK:       "✔", SymFail: "✖", SymBullet: "•",
		}
	}
}
