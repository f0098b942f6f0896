// Package display signals an attached display's power state around playback.
//
// The commands themselves come from configuration (CEC, DPMS, vendor tools);
// this package only fires them detached and best-effort. A failing or missing
// power command must never block or fail playback control.
package display

import (
	"os/exec"

	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/log"
	"github.com/spf13/viper"
)

// PowerOn fires the configured display power-on command, if any.
func PowerOn() {
	fire(key.DisplayPowerOn)
}

// PowerOff fires the configured display power-off command, if any.
func PowerOff() {
	fire(key.DisplayPowerOff)
}

func fire(configKey string) {
	argv := viper.GetStringSlice(configKey)
	if len(argv) == 0 {
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		log.Warnf("display signal %s: %v", configKey, err)
		return
	}

	// Fire and forget; reap in the background so no zombie outlives us.
	go func() {
		_ = cmd.Wait()
	}()
}
