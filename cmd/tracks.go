// Package cmd implements the command-line interface for couch.
package cmd

import (
	"github.com/couch-cli/couch/dispatch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(subsCmd)
	subsCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// subsCmd controls the subtitle track of the current session.
var subsCmd = &cobra.Command{
	Use:     "subs [on|off|track]",
	Short:   "Cycle, toggle or select the subtitle track",
	Long:    "Without an argument, cycle through the available subtitle tracks.\n\"on\" and \"off\" toggle visibility; a number selects a specific track id.",
	Example: "  couch subs\n  couch subs off\n  couch subs 2",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		render(dispatch.NewDefault(), "subs", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	rootCmd.AddCommand(audioCmd)
	audioCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// audioCmd controls the audio track of the current session.
var audioCmd = &cobra.Command{
	Use:     "audio [track]",
	Short:   "Cycle or select the audio track",
	Example: "  couch audio\n  couch audio 2",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		render(dispatch.NewDefault(), "audio", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	rootCmd.AddCommand(volumeCmd)
	volumeCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// volumeCmd queries or changes the playback volume.
var volumeCmd = &cobra.Command{
	Use:     "volume [value]",
	Short:   "Show or change the playback volume",
	Long:    "Without an argument, show the current volume.\nA signed value adjusts relatively, an unsigned one sets the absolute level.",
	Example: "  couch volume\n  couch volume 80\n  couch volume +5\n  couch volume -- -10",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		render(dispatch.NewDefault(), "volume", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}
