// Package main содержит точку входа обработчика напоминаний medkeeper.
package main

import (
	"os"

	"github.com/IvanChernomyrdin/medkeeper/internal/cli"
)

var (
	// buildVersion задаётся через -ldflags "-X main.buildVersion=...".
	buildVersion = "dev"
	buildDate    = "unknown"
)

func main() {
	os.Exit(cli.ExecuteReminder(buildVersion, buildDate))
}
