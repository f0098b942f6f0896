// Package cmd implements the command-line interface for couch.
package cmd

import (
	"github.com/couch-cli/couch/dispatch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// simpleCommand wires a CLI subcommand straight through to its dispatch
// counterpart of the same name.
func simpleCommand(name, short string, maxArgs int) *cobra.Command {
	c := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.MaximumNArgs(maxArgs),
		Run: func(cmd *cobra.Command, args []string) {
			render(dispatch.NewDefault(), name, args, lo.Must(cmd.Flags().GetBool("json")))
		},
	}
	c.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
	return c
}

func init() {
	rootCmd.AddCommand(
		simpleCommand("stop", "Stop playback and shut the engine down", 0),
		simpleCommand("pause", "Pause playback", 0),
		simpleCommand("continue", "Resume paused playback", 0),
		simpleCommand("loop", "Toggle looping of the current file", 0),
	)
}

func init() {
	rootCmd.AddCommand(timingCmd)
	timingCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// timingCmd reports the playback position, or seeks when given a position.
var timingCmd = &cobra.Command{
	Use:     "timing [position]",
	Short:   "Show the playback position, or seek to an absolute one",
	Long:    "Show the current playback position and duration.\nWith an argument, seek to that absolute position. Positions are plain seconds or colon-separated time, e.g. 90, 1:30 or 1:02:30.",
	Example: "  couch timing\n  couch timing 1:30",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		render(dispatch.NewDefault(), "timing", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	rootCmd.AddCommand(
		seekCommand("rewind", "Seek backwards"),
		seekCommand("jump", "Seek forwards"),
	)
}

func seekCommand(name, short string) *cobra.Command {
	c := &cobra.Command{
		Use:     name + " [seconds]",
		Short:   short,
		Long:    short + " by the given number of seconds, defaulting to the configured seek step.",
		Example: "  couch " + name + "\n  couch " + name + " 30",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			render(dispatch.NewDefault(), name, args, lo.Must(cmd.Flags().GetBool("json")))
		},
	}
	c.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
	return c
}
