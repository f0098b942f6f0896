// Package cmd implements the command-line interface for couch.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/couch-cli/couch/color"
	"github.com/couch-cli/couch/icon"
	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// checkEngine verifies the configured playback engine executable is present
// in the system PATH before a launch is attempted.
func checkEngine() {
	player := viper.GetString(key.PlayerPath)
	if _, err := exec.LookPath(player); err != nil {
		printMissingDependencyError(player)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	if dep == "mpv" {
		switch runtime.GOOS {
		case "darwin":
			installCmd = "brew install mpv"
		case "linux":
			installCmd = "sudo apt install mpv"
		case "windows":
			installCmd = "scoop install mpv"
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The playback engine '%s' was not found in your PATH.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.HiYellow).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
