package tui

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"syjonctl/pkg/config"
	"syjonctl/pkg/exporter"
	"syjonctl/pkg/syjon"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// loadPage asks for the timetable file when none was given and parses it.
// The chosen path is remembered in cfg.
func loadPage(cfg *config.AppConfig, pagePath string) (*goquery.Document, error) {
	if pagePath == "" {
		pagePath = cfg.LastPagePath

		pathForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Timetable page").
					Description("Path to the saved Syjon timetable HTML page.").
					Placeholder("plan.html").
					Value(&pagePath).
					Validate(func(s string) error {
						if _, err := os.Stat(s); err != nil {
							return fmt.Errorf("cannot open %q", s)
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := pathForm.Run(); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(pagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open timetable page: %w", err)
	}
	defer file.Close()

	var doc *goquery.Document
	_ = spinner.New().
		Title("Reading timetable...").
		Action(func() {
			doc, err = syjon.ParseDocument(file)
		}).
		Run()

	if err != nil {
		return nil, err
	}

	cfg.LastPagePath = pagePath
	return doc, nil
}

// RunGroupsTUI shows how many parallel groups every subject type has
func RunGroupsTUI(pagePath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	doc, err := loadPage(cfg, pagePath)
	if err != nil {
		return err
	}

	groups, err := syjon.DiscoverGroupsFromDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to read groups: %w", err)
	}

	fmt.Println(accentStyle.Render("Groups on this timetable"))
	fmt.Println(RenderGroups(groups))

	return config.Save(cfg)
}

// RunScheduleTUI runs the interactive flow for choosing one group per subject type,
// printing the resulting plan and optionally exporting it.
func RunScheduleTUI(pagePath string) error {
	fmt.Println(accentStyle.Render("Welcome to the Syjon timetable builder!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	doc, err := loadPage(cfg, pagePath)
	if err != nil {
		return err
	}

	groups, err := syjon.DiscoverGroupsFromDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to read groups: %w", err)
	}
	if len(groups) == 0 {
		fmt.Println(errorStyle.Render("No activities found on this page!"))
		return nil
	}

	kinds := make([]string, 0, len(groups))
	for kind := range groups {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	// One select per subject type, preset to the saved choice.
	chosen := make(map[string]*int, len(kinds))
	var fields []huh.Field
	for _, kind := range kinds {
		n := 1
		if saved, ok := cfg.SavedSelection[kind]; ok && saved <= groups[kind] {
			n = saved
		}
		chosen[kind] = &n

		var options []huh.Option[int]
		for i := 1; i <= groups[kind]; i++ {
			options = append(options, huh.NewOption(fmt.Sprintf("Group %d", i), i))
		}

		fields = append(fields, huh.NewSelect[int]().
			Title(typeLabel(kind)).
			Options(options...).
			Value(chosen[kind]))
	}

	groupForm := huh.NewForm(huh.NewGroup(fields...)).WithTheme(GetTheme())
	if err := groupForm.Run(); err != nil {
		return err
	}

	sel := make(syjon.Selection, len(chosen))
	for kind, n := range chosen {
		sel[kind] = *n
	}

	activities, err := syjon.BuildScheduleFromDocument(doc, sel)
	if err != nil {
		return fmt.Errorf("failed to build timetable: %w", err)
	}

	fmt.Println(RenderSchedule(activities))

	save := true
	var outputFile string

	finishForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remember this group selection?").
				Value(&save),
			huh.NewInput().
				Title("Export to calendar file").
				Description("Leave empty to skip the export.").
				Placeholder("plan.ics").
				Value(&outputFile),
		),
	).WithTheme(GetTheme())

	if err := finishForm.Run(); err != nil {
		return err
	}

	if save {
		cfg.SavedSelection = sel
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	outputFile = strings.TrimSpace(outputFile)
	if outputFile == "" {
		return nil
	}
	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	if err := exportActivities(cfg, activities, outputFile); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("\nSuccess! Exported %d weekly activities to %s", len(activities), outputFile)))
	return nil
}

// exportActivities writes activities to path using the calendar settings from cfg.
func exportActivities(cfg *config.AppConfig, activities []syjon.Activity, path string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	start, err := cfg.StartDate(loc)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	opts := exporter.Options{Start: start, Weeks: cfg.WeekCount(), Location: loc}
	if err := exporter.GenerateICS(activities, opts, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	return nil
}
