package main

import (
	"os"

	"github.com/0xPolygon/rolldown"
	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/config"
	"github.com/0xPolygon/rolldown/log"
	"github.com/urfave/cli/v2"
)

const appName = "rolldown"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value:    cli.NewStringSlice(common.NODE, common.RPC),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: rolldown_config.toml)",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = rolldown.Version
	flags := []cli.Flag{
		&configFileFlag,
		&componentsFlag,
		&saveConfigFlag,
	}
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the rolldown node",
			Action:  start,
			Flags:   flags,
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Print the default configuration",
			Action:  configCmd,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
