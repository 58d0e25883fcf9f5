package cmd

import (
	"fmt"

	"syjonctl/pkg/config"
	"syjonctl/pkg/syjon"
	"syjonctl/pkg/tui"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the weekly plan for the selected groups",
	Long: `Print the weekly plan for the selected groups.
Groups come from --group flags, or from the selection saved by --save or the interactive mode.`,
	Example: `  syjonctl schedule -f plan.html -g Laboratorium=2 -g Wykład=1 --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
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

		activities, err := syjon.BuildSchedule(html, sel)
		if err != nil {
			return fmt.Errorf("failed to build timetable: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSchedule(activities))

		if save, _ := cmd.Flags().GetBool("save"); save {
			cfg.SavedSelection = sel
			if err := config.Save(cfg); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	addPageFlag(scheduleCmd)
	addSelectionFlag(scheduleCmd)
	scheduleCmd.Flags().Bool("save", false, "Remember the group selection for later runs")
}
