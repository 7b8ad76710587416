package main

import (
	"os"

	"github.com/yndnr/dev-go/internal/cli/command"
)

func main() {
	app := command.App()

	// Errors are reported by the app's ExitErrHandler; only the status
	// is left to set here.
	if err := app.Run(os.Args); err != nil {
		os.Exit(command.ExitCode(err))
	}
}
