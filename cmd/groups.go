package cmd

import (
	"fmt"

	"syjonctl/pkg/syjon"
	"syjonctl/pkg/tui"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the class types on a timetable and how many groups each has",
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := readPage(cmd)
		if err != nil {
			return err
		}

		groups, err := syjon.DiscoverGroups(html)
		if err != nil {
			return fmt.Errorf("failed to read groups: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderGroups(groups))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	addPageFlag(groupsCmd)
}
