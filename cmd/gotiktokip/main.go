/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package main

import (
	"os"

	"github.com/slicingmelon/gotiktokip/core/cli"
	GTIPLogger "github.com/slicingmelon/gotiktokip/core/utils/logger"
)

func main() {
	runner := cli.NewRunner()
	if err := runner.Initialize(); err != nil {
		GTIPLogger.Error().Msgf("Initialization failed: %v", err)
		os.Exit(1)
	}

	// Lookup failures are reported by the runner itself and do not change
	// the exit status
	if err := runner.Run(); err != nil {
		GTIPLogger.Error().Msgf("Execution failed: %v", err)
		os.Exit(1)
	}
}
