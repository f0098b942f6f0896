// Package cmd implements the command-line interface for couch.
package cmd

import (
	"github.com/couch-cli/couch/dispatch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
	statusCmd.Flags().Bool("json-schema", false, "Print the JSON schema of the result and exit")
}

// statusCmd shows a composite snapshot of the current session.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what is playing, where, and on which tracks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json-schema")) {
			printSchema(&dispatch.StatusReport{})
			return
		}

		render(dispatch.NewDefault(), "status", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}
