package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "syjonctl",
	Short: "A CLI and TUI for Syjon timetables",
	Long: `syjonctl reads a timetable page saved from the Syjon scheduling system,
lets you pick your group for every class type and prints or exports your weekly plan.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
