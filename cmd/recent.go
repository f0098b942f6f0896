// Package cmd implements the command-line interface for couch.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/couch-cli/couch/icon"
	"github.com/couch-cli/couch/recent"
	"github.com/couch-cli/couch/style"
	"github.com/couch-cli/couch/timecode"
	"github.com/couch-cli/couch/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().BoolP("clear", "c", false, "Wipe the recently-played registry")
	recentCmd.Flags().BoolP("paths", "p", false, "Print full paths instead of file names")
	recentCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// recentCmd lists recently played files and their resume positions.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently played files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(recent.Clear())
			fmt.Printf("%s recently-played registry cleared\n", icon.Get(icon.Success))
			return
		}

		entries, err := recent.All()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(os.Stdout)
			lo.Must0(encoder.Encode(entries))
			return
		}

		fullPaths := lo.Must(cmd.Flags().GetBool("paths"))
		for _, entry := range entries {
			name := util.FileStem(entry.Path)
			if fullPaths {
				name = entry.Path
			}
			fmt.Printf("%s  %s\n", style.Faint(timecode.Format(entry.PositionSeconds)), name)
		}
	},
}
