// Package cmd implements the command-line interface for couch.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/couch-cli/couch/bookmark"
	"github.com/couch-cli/couch/color"
	"github.com/couch-cli/couch/constant"
	"github.com/couch-cli/couch/dispatch"
	"github.com/couch-cli/couch/icon"
	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/log"
	"github.com/couch-cli/couch/style"
	"github.com/couch-cli/couch/util"
	"github.com/couch-cli/couch/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the couch application.
var rootCmd = &cobra.Command{
	Use:   constant.Couch,
	Short: "Control a single media playback engine from the command line",
	Long: style.Fg(color.HiPurple)("▇▇▇ "+constant.Couch) + "\n" +
		style.New().Italic(true).Foreground(color.Gray).Render("    - play, pause, seek and bookmark from anywhere in your shell"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// render prints a dispatch result and exits non-zero on failure. When the core
// asks for a missing input it is collected interactively and the command is
// dispatched again.
func render(d *dispatch.Dispatcher, name string, args []string, asJson bool) {
	result := d.Dispatch(name, args)

	for result.Outcome == dispatch.OutcomeNeedsInput {
		var answer string
		prompt := &survey.Input{Message: util.Capitalize(result.Missing) + ":"}
		handleErr(survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)))
		result = d.Dispatch(name, append(args, answer))
	}

	if asJson {
		encoder := json.NewEncoder(os.Stdout)
		lo.Must0(encoder.Encode(result))
	} else if result.Outcome == dispatch.OutcomeFail {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), result.Message)
	} else {
		fmt.Println(result.Message)
	}

	if result.Outcome == dispatch.OutcomeFail {
		os.Exit(1)
	}
}

// printSchema emits the JSON schema of a machine-readable report shape.
func printSchema(report any) {
	schema := jsonschema.Reflect(report)
	fmt.Println(string(lo.Must(json.MarshalIndent(schema, "", "  "))))
}

// completionBookmarkNames completes bookmark names of the currently playing file.
func completionBookmarkNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	d := dispatch.NewDefault()
	if !d.Session().IsLive() {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	path, err := d.Session().Client().GetString("path")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	records, err := d.Store().List(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := lo.Map(records, func(record bookmark.Bookmark, _ int) string {
		return record.Name
	})
	return lo.Uniq(names), cobra.ShellCompDirectiveNoFileComp
}
