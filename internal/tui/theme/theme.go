// Package theme holds the TUI colors for each display theme.
package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthtrack/internal/constants"
)

type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Title       lipgloss.Style
	Muted       lipgloss.Style
	Danger      lipgloss.Style
	Warning     lipgloss.Style
	Success     lipgloss.Style
	Banner      lipgloss.Style
	Card        lipgloss.Style
	Doc         lipgloss.Style

	form *huh.Theme
}

// palette is the handful of colors that change between themes
type palette struct {
	accent  lipgloss.TerminalColor
	text    lipgloss.TerminalColor
	muted   lipgloss.TerminalColor
	surface lipgloss.TerminalColor
	border  lipgloss.TerminalColor
}

var (
	dark = palette{
		accent:  lipgloss.Color("205"),
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("240"),
		surface: lipgloss.Color("236"),
		border:  lipgloss.Color("62"),
	}
	light = palette{
		accent:  lipgloss.Color("162"),
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("245"),
		surface: lipgloss.Color("254"),
		border:  lipgloss.Color("61"),
	}
	system = palette{
		accent:  lipgloss.AdaptiveColor{Light: "162", Dark: "205"},
		text:    lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		muted:   lipgloss.AdaptiveColor{Light: "245", Dark: "240"},
		surface: lipgloss.AdaptiveColor{Light: "254", Dark: "236"},
		border:  lipgloss.AdaptiveColor{Light: "61", Dark: "62"},
	}
)

// New builds the styles for t. Unknown themes follow the terminal.
func New(t constants.Theme) Styles {
	p := system
	form := huh.ThemeCharm()
	switch t {
	case constants.ThemeDark:
		p = dark
		form = huh.ThemeDracula()
	case constants.ThemeLight:
		p = light
		form = huh.ThemeBase()
	}

	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.surface).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			MarginBottom(1),
		Muted:   lipgloss.NewStyle().Foreground(p.muted),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220")).
			Bold(true).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Foreground(p.text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Doc:  lipgloss.NewStyle().Padding(1, 2),
		form: form,
	}
}

// Form is the huh theme matching these styles
func (s Styles) Form() *huh.Theme {
	if s.form == nil {
		return huh.ThemeCharm()
	}
	return s.form
}

// Color maps the color names used by achievements and insights to terminal
// colors. Unknown names fall back to gray.
func Color(name string) lipgloss.Color {
	switch name {
	case "gold", "yellow":
		return lipgloss.Color("220")
	case "bronze":
		return lipgloss.Color("172")
	case "blue":
		return lipgloss.Color("39")
	case "purple":
		return lipgloss.Color("135")
	case "green":
		return lipgloss.Color("42")
	case "pink":
		return lipgloss.Color("205")
	case "orange":
		return lipgloss.Color("208")
	case "red":
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("245")
	}
}
