package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"syjonctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Calendar Export Defaults", "calendar"),
						huh.NewOption("Forget Saved Group Selection", "forget"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "calendar":
			err = runSetCalendarTUI(cfg)
		case "forget":
			cfg.SavedSelection = nil
			if err = config.Save(cfg); err == nil {
				fmt.Println(accentStyle.Render("\n✅ Saved group selection cleared.\n"))
			}
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.syjonctl.json) ---"))
			fmt.Println(DescribeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// DescribeConfig renders the settings as plain lines.
func DescribeConfig(cfg *config.AppConfig) string {
	var b strings.Builder

	if len(cfg.SavedSelection) == 0 {
		b.WriteString("Saved Groups: none\n")
	} else {
		kinds := make([]string, 0, len(cfg.SavedSelection))
		for kind := range cfg.SavedSelection {
			kinds = append(kinds, kind)
		}
		slices.Sort(kinds)

		b.WriteString("Saved Groups:\n")
		for _, kind := range kinds {
			fmt.Fprintf(&b, "  %s = %d\n", kind, cfg.SavedSelection[kind])
		}
	}

	orDefault := func(v, def string) string {
		if v == "" {
			return def + " (default)"
		}
		return v
	}

	fmt.Fprintf(&b, "Last Page: %s\n", orDefault(cfg.LastPagePath, "none"))
	fmt.Fprintf(&b, "Timezone: %s\n", orDefault(cfg.Timezone, config.DefaultTimezone))
	fmt.Fprintf(&b, "Semester Start: %s\n", orDefault(cfg.SemesterStart, "current week"))
	fmt.Fprintf(&b, "Weeks: %d\n", cfg.WeekCount())
	fmt.Fprintf(&b, "Accent Color: %s\n", orDefault(cfg.AccentColor, defaultAccent))

	return b.String()
}

func runSetCalendarTUI(cfg *config.AppConfig) error {
	timezone := cfg.Timezone
	start := cfg.SemesterStart
	weeks := strconv.Itoa(cfg.WeekCount())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Description("IANA name used for exported events.").
				Placeholder(config.DefaultTimezone).
				Value(&timezone).
				Validate(func(s string) error {
					candidate := config.AppConfig{Timezone: s}
					_, err := candidate.Location()
					return err
				}),
			huh.NewInput().
				Title("Semester start").
				Description("First day of the first week (YYYY-MM-DD). Leave empty for the current week.").
				Placeholder("2026-10-05").
				Value(&start).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					return config.ValidateDate(s)
				}),
			huh.NewInput().
				Title("Number of weeks").
				Value(&weeks).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 || n > 52 {
						return fmt.Errorf("please enter a number between 1 and 52")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = timezone
	cfg.SemesterStart = start
	cfg.Weeks, _ = strconv.Atoi(weeks)

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Calendar export defaults saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Pick a preset or choose Custom to enter a hex code.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Teal", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(config.ValidateColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		input = hexInput
	}

	cfg.AccentColor = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color(input)).Render("\n✅ The theme color is now saved.\n"))
	return nil
}
