package tui

import (
	"syjonctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Replaced by GetTheme once the saved accent color is known
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

const defaultAccent = "99"

// GetTheme builds the form theme from the accent color saved in the config.
func GetTheme() *huh.Theme {
	color := defaultAccent
	if cfg, err := config.Load(); err == nil && cfg.AccentColor != "" {
		color = cfg.AccentColor
	}

	// Plain prints outside of forms use the same accent.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	return GetCustomTheme(color)
}

// GetCustomTheme returns the charm theme recolored with accent.
// The settings form uses it to preview a color before saving it.
func GetCustomTheme(accent string) *huh.Theme {
	t := huh.ThemeCharm()
	c := lipgloss.Color(accent)

	t.Focused.Title = t.Focused.Title.Foreground(c).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(c).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(c)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(c)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(c)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(c)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(c)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(c)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(c)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu interactive form experience.
// pagePath is the timetable page given on the command line, if any.
func RunTUI(pagePath string) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📅 Build My Timetable", "schedule"),
					huh.NewOption("🔢 List Available Groups", "groups"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	if action == "groups" {
		return RunGroupsTUI(pagePath)
	} else if action == "config" {
		return RunConfigTUI()
	}

	return RunScheduleTUI(pagePath)
}
