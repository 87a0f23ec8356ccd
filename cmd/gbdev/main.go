package main

import (
	"context"
	"os"

	"gbdev.dev/gbdev/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.DefaultOptions(version, commit, date))
	os.Exit(cli.Execute(context.Background(), rootCmd, os.Args[1:]))
}
