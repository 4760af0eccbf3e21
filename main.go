// ABOUTME: Entry point for the tracsis CLI
// ABOUTME: Command-line client for the Tracsis task tracking service

package main

import (
	"fmt"
	"os"

	"github.com/apsissolutions/tracsis-cli/cmd"
	"github.com/apsissolutions/tracsis-cli/internal/config"
	"github.com/apsissolutions/tracsis-cli/internal/debuglog"
)

func main() {
	config.LoadEnv()
	defer debuglog.Close()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
