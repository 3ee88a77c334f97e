//go:build cli
// +build cli

// Maintenance CLI entry point for the carolinebride storefront; built with
// -tags cli in place of the HTTP server main. The blank custom import pulls
// in extension commands, cron jobs and routes before Execute applies them.
package main

import (
	_ "carolinebride.GO/custom"

	"carolinebride.GO/cmd"
	"carolinebride.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
