package main

import (
	"os"
	"time"

	"git.solver4all.com/azaryc2s/fleetgen"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var sizes fleetgen.SettingsFlags

func main() {
	app := cli.NewApp()
	app.Name = "generator"
	app.Usage = "generate connected graph and fleet datasets as JSON fixtures"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "output, o", Value: "datasets", Usage: "Directory the datasets are written to", EnvVar: "FLEETGEN_OUTPUT"},
		cli.Int64Flag{Name: "seed", Usage: "Seed of the run, dataset i uses seed+i. 0 (default) picks one from the clock", EnvVar: "FLEETGEN_SEED"},
		cli.GenericFlag{Name: "size", Value: &sizes, Usage: "NODES:EDGES of a dataset, repeatable. Defaults to the built-in table"},
		cli.BoolTFlag{Name: "manifest", Usage: "Write manifest.json with seeds and system info next to the datasets"},
		cli.BoolFlag{Name: "check", Usage: "Validate every dataset before writing it"},
		cli.BoolFlag{Name: "verbose, v", Usage: "Debug logging"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		zap.L().Fatal("generation failed", zap.Error(err))
	}
}

func run(c *cli.Context) error {
	logger, err := fleetgen.NewLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	settings := []fleetgen.Settings(sizes)
	if len(settings) == 0 {
		settings = fleetgen.DefaultSettings
	}
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := fleetgen.RunConfig{
		OutputDir: c.String("output"),
		Seed:      seed,
		Settings:  settings,
		Check:     c.Bool("check"),
		Manifest:  c.BoolT("manifest"),
	}
	if cfg.Manifest {
		cfg.System = fleetgen.CollectSysInfo()
	}
	logger.Debug("starting run", zap.Int64("seed", seed), zap.Int("datasets", len(settings)))

	_, err = fleetgen.Run(cfg, logger)
	return err
}
