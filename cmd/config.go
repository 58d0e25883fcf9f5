package cmd

import (
	"fmt"

	"syjonctl/pkg/config"
	"syjonctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage syjonctl configuration",
	Long:  "View or edit your local configuration settings (saved groups, calendar export defaults, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.NFlag() == 0 {
			// No flags given, launch the interactive settings flow
			return tui.RunConfigTUI()
		}

		if show, _ := flags.GetBool("show"); show && flags.NFlag() == 1 {
			fmt.Fprint(cmd.OutOrStdout(), tui.DescribeConfig(cfg))
			return nil
		}

		if flags.Changed("tz") {
			cfg.Timezone, _ = flags.GetString("tz")
			if _, err := cfg.Location(); err != nil {
				return err
			}
		}
		if flags.Changed("start") {
			cfg.SemesterStart, _ = flags.GetString("start")
			if err := config.ValidateDate(cfg.SemesterStart); err != nil {
				return err
			}
		}
		if flags.Changed("weeks") {
			cfg.Weeks, _ = flags.GetInt("weeks")
			if cfg.Weeks <= 0 {
				return fmt.Errorf("weeks must be positive")
			}
		}
		if flags.Changed("color") {
			cfg.AccentColor, _ = flags.GetString("color")
			if err := config.ValidateColor(cfg.AccentColor); err != nil {
				return err
			}
		}
		if forget, _ := flags.GetBool("clear-selection"); forget {
			cfg.SavedSelection = nil
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), tui.DescribeConfig(cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("tz", "", "Timezone for exported events (IANA name)")
	configCmd.Flags().String("start", "", "Semester start date (YYYY-MM-DD)")
	configCmd.Flags().Int("weeks", 0, "Number of weeks to export")
	configCmd.Flags().String("color", "", "Accent color (ANSI number or #RRGGBB)")
	configCmd.Flags().Bool("clear-selection", false, "Forget the saved group selection")
	configCmd.Flags().Bool("show", false, "Print the current configuration without changing it")
}
