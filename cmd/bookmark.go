// Package cmd implements the command-line interface for couch.
package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/couch-cli/couch/dispatch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(markCmd)
	markCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// markCmd saves the current playback position as a named bookmark.
// Without a name the user is prompted for one.
var markCmd = &cobra.Command{
	Use:     "mark [name]",
	Short:   "Bookmark the current playback position",
	Example: "  couch mark best-scene\n  couch mark",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		render(dispatch.NewDefault(), "mark", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	rootCmd.AddCommand(gotoCmd)
	gotoCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// gotoCmd seeks to a bookmark saved for the current file.
var gotoCmd = &cobra.Command{
	Use:               "goto [name]",
	Short:             "Seek to a saved bookmark",
	Example:           "  couch goto best-scene",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBookmarkNames,
	Run: func(cmd *cobra.Command, args []string) {
		render(dispatch.NewDefault(), "goto", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	rootCmd.AddCommand(marksCmd)
	marksCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
	marksCmd.Flags().Bool("json-schema", false, "Print the JSON schema of the result and exit")
}

// marksCmd lists every bookmark of the current file.
var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "List the bookmarks of the currently playing file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json-schema")) {
			printSchema(&dispatch.MarksReport{})
			return
		}

		render(dispatch.NewDefault(), "marks", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	rootCmd.AddCommand(unmarkCmd)
	unmarkCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
	unmarkCmd.Flags().BoolP("force", "f", false, "Skip the confirmation when removing every bookmark")
}

// unmarkCmd removes bookmarks of the current file. Removing all of them asks
// for confirmation first.
var unmarkCmd = &cobra.Command{
	Use:               "unmark [name]",
	Short:             "Remove a bookmark of the current file, or all of them",
	Example:           "  couch unmark best-scene\n  couch unmark",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionBookmarkNames,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !lo.Must(cmd.Flags().GetBool("force")) {
			var confirmed bool
			prompt := &survey.Confirm{Message: "Remove every bookmark of the current file?"}
			handleErr(survey.AskOne(prompt, &confirmed))
			if !confirmed {
				return
			}
		}

		render(dispatch.NewDefault(), "unmark", args, lo.Must(cmd.Flags().GetBool("json")))
	},
}
