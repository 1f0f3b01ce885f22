package main

import (
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		printFailure(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
