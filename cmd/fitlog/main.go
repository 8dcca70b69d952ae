package main

import (
	"fmt"
	"os"

	"github.com/aslanbek/fitlog/internal/commands"
	"github.com/aslanbek/fitlog/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logging.Setup()
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
