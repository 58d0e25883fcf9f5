package cmd

import (
	"fmt"

	"syjonctl/pkg/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the timetable decoder over HTTP",
	Long: `Start an HTTP server that decodes timetable pages posted to it.

  POST /groups                         page in the body, returns groups per class type
  POST /schedule?Laboratorium=2&...    page in the body, returns the weekly plan
  GET  /health`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		compress, _ := cmd.Flags().GetBool("compress")

		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", port)
		if err := server.ListenAndServe(port, compress); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", ":8080", "Address to listen on in format ':PORT'")
	serveCmd.Flags().Bool("compress", false, "Compress responses")
}
