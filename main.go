// Package main is the entry point for the couch application.
package main

import (
	"github.com/couch-cli/couch/cmd"
	"github.com/couch-cli/couch/config"
	"github.com/couch-cli/couch/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
