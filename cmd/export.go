package cmd

import (
	"fmt"
	"os"
	"strings"

	"syjonctl/pkg/config"
	"syjonctl/pkg/exporter"
	"syjonctl/pkg/syjon"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export the weekly plan to an ICS file",
	Long: `Export the weekly plan for the selected groups to an ICS file without using the interactive TUI.
Every activity gets one event per week from the semester start.`,
	Example: `  syjonctl export -f plan.html -g Laboratorium=2 -g Wykład=1 --start 2026-10-05 --weeks 15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Flags override the saved calendar defaults for this run only.
		if cmd.Flags().Changed("tz") {
			cfg.Timezone, _ = cmd.Flags().GetString("tz")
		}
		if cmd.Flags().Changed("start") {
			cfg.SemesterStart, _ = cmd.Flags().GetString("start")
		}
		if cmd.Flags().Changed("weeks") {
			cfg.Weeks, _ = cmd.Flags().GetInt("weeks")
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		start, err := cfg.StartDate(loc)
		if err != nil {
			return err
		}

		sel, err := selection(cmd, cfg)
		if err != nil {
			return err
		}

		html, err := readPage(cmd)
		if err != nil {
			return err
		}

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		activities, err := syjon.BuildSchedule(html, sel)
		if err != nil {
			return fmt.Errorf("failed to build timetable: %w", err)
		}

		if len(activities) == 0 {
			return fmt.Errorf("no activities found for the selected groups")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		opts := exporter.Options{Start: start, Weeks: cfg.WeekCount(), Location: loc}
		if err := exporter.GenerateICS(activities, opts, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d weekly activities to %s\n", len(activities), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addPageFlag(exportCmd)
	addSelectionFlag(exportCmd)

	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().String("start", "", "First day of the semester (YYYY-MM-DD), defaults to the saved value or the current week")
	exportCmd.Flags().Int("weeks", 0, fmt.Sprintf("Number of weeks the plan repeats (default: saved value or %d)", config.DefaultWeeks))
	exportCmd.Flags().String("tz", "", fmt.Sprintf("Timezone of the timetable (default: saved value or %s)", config.DefaultTimezone))
}
