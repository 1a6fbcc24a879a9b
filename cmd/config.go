package main

import (
	"os"
	"strings"

	"github.com/0xPolygon/rolldown/config"
	"github.com/urfave/cli/v2"
)

func configCmd(*cli.Context) error {
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultVars)
	defaultConfig.WriteString(config.DefaultValues)

	_, err := os.Stdout.WriteString(defaultConfig.String())
	if err != nil {
		return err
	}

	return nil
}
