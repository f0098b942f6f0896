// Package cmd implements the command-line interface for couch.
package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/couch-cli/couch/dispatch"
	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/library"
	"github.com/couch-cli/couch/recent"
	"github.com/couch-cli/couch/style"
	"github.com/couch-cli/couch/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// playCmd starts the playback engine on a file. The query is tried as a
// literal path first, then resolved against the configured library.
var playCmd = &cobra.Command{
	Use:     "play [query]",
	Short:   "Start playback of a media file",
	Long:    "Start playback of a media file.\nWithout a query the most recently played file is resumed at its last known position.",
	Example: "  couch play ~/movies/heat.mkv\n  couch play heat\n  couch play",
	Run: func(cmd *cobra.Command, args []string) {
		checkEngine()

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		d := dispatch.NewDefault()

		if len(args) == 0 {
			entry, err := recent.Last()
			handleErr(err)
			last, ok := entry.Get()
			if !ok {
				handleErr(errors.New("nothing to resume, give a file path or a library query"))
			}

			render(d, "play", []string{last.Path}, asJson)
			if last.PositionSeconds > 0 {
				render(d, "timing", []string{strconv.Itoa(last.PositionSeconds)}, asJson)
			}
			return
		}

		render(d, "play", []string{resolveQuery(strings.Join(args, " "))}, asJson)
	},
}

// resolveQuery maps user input onto a playable path: an existing file wins,
// anything else is matched against the library.
func resolveQuery(query string) string {
	if stat, err := filesystem.API().Stat(query); err == nil && !stat.IsDir() {
		return query
	}

	path, err := library.Resolve(query)
	handleErr(err)
	return path
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON string")
}

// randomCmd plays a random library file, optionally narrowed by a query.
var randomCmd = &cobra.Command{
	Use:     "random [query]",
	Short:   "Play a random file from the library",
	Example: "  couch random\n  couch random twilight zone",
	Run: func(cmd *cobra.Command, args []string) {
		checkEngine()

		path, err := library.Random(strings.Join(args, " "))
		handleErr(err)

		render(dispatch.NewDefault(), "play", []string{path}, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("paths", "p", false, "Print full paths instead of file names")
}

// listCmd prints library files matching a query, best match first.
var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List library files matching a query",
	Run: func(cmd *cobra.Command, args []string) {
		matches, err := library.Match(strings.Join(args, " "))
		handleErr(err)

		fullPaths := lo.Must(cmd.Flags().GetBool("paths"))

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = w
		}

		for _, match := range matches {
			if fullPaths {
				fmt.Println(match)
				continue
			}
			fmt.Println(style.Truncate(width)(util.FileStem(match)))
		}
	},
}
