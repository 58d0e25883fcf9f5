package cmd

import (
	"fmt"
	"io"
	"os"

	"syjonctl/pkg/config"
	"syjonctl/pkg/syjon"

	"github.com/spf13/cobra"
)

// addPageFlag registers the --file flag shared by every command that reads a timetable page.
func addPageFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Saved Syjon timetable page (use - for stdin)")
}

// readPage loads the timetable page named by --file.
func readPage(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return "", fmt.Errorf("no timetable page given, pass --file")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read timetable page: %w", err)
	}

	return string(data), nil
}

// addSelectionFlag registers the repeatable --group TYPE=NUMBER flag.
func addSelectionFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("group", "g", nil, "Group to attend as TYPE=NUMBER (repeatable); defaults to the saved selection")
}

// selection returns the groups given on the command line, or the saved ones when none were.
func selection(cmd *cobra.Command, cfg *config.AppConfig) (syjon.Selection, error) {
	pairs, _ := cmd.Flags().GetStringArray("group")
	if len(pairs) > 0 {
		return syjon.ParseSelection(pairs)
	}

	if len(cfg.SavedSelection) == 0 {
		return nil, fmt.Errorf("no groups selected, pass --group TYPE=NUMBER or run 'syjonctl interactive'")
	}
	return syjon.Selection(cfg.SavedSelection), nil
}
