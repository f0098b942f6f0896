package version

import (
	"fmt"

	"github.com/couch-cli/couch/color"
	"github.com/couch-cli/couch/constant"
	"github.com/couch-cli/couch/icon"
	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/style"
	"github.com/couch-cli/couch/util"
	"github.com/spf13/viper"
)

// Notify prints a terminal alert when a more recent stable release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/couch-cli/couch/releases/tag/v"+version),
	)
}
