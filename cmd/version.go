package main

import (
	"os"

	"github.com/0xPolygon/rolldown"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	rolldown.PrintVersion(os.Stdout)
	return nil
}
