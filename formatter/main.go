package main

import (
	"errors"
	"os"

	"git.solver4all.com/azaryc2s/fleetgen"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	app := cli.NewApp()
	app.Name = "formatter"
	app.Usage = "rewrite dataset files in canonical form"
	app.ArgsUsage = "FILE..."
	app.Action = format

	if err := app.Run(os.Args); err != nil {
		zap.L().Fatal("formatting failed", zap.Error(err))
	}
}

func format(c *cli.Context) error {
	logger, err := fleetgen.NewLogger(false)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if c.NArg() == 0 {
		return errors.New("no arguments passed")
	}
	for _, fileName := range c.Args() {
		if err := writeBackFile(fileName); err != nil {
			logger.Error("could not format", zap.String("file", fileName), zap.Error(err))
			continue
		}
		logger.Info("Formatted " + fileName)
	}
	return nil
}

func writeBackFile(fileName string) error {
	d, err := fleetgen.ReadFile(fileName)
	if err != nil {
		return err
	}
	return fleetgen.WriteFile(fileName, d)
}
