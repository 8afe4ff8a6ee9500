package main

import (
	"os"

	"sshtint/cmd"
	"sshtint/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
