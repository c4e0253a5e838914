package main

import (
	"os"

	"github.com/hbjs97/cloudctx/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
