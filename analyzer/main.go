package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.solver4all.com/azaryc2s/fleetgen"
	"github.com/urfave/cli"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	app := cli.NewApp()
	app.Name = "analyzer"
	app.Usage = "validate a dataset directory and print a CSV summary"
	app.ArgsUsage = "DATASET_DIR"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "plot", Usage: "Directory to write degree histograms to"},
		cli.BoolFlag{Name: "verbose, v", Usage: "Debug logging"},
	}
	app.Action = analyze

	if err := app.Run(os.Args); err != nil {
		zap.L().Fatal("analysis failed", zap.Error(err))
	}
}

func analyze(c *cli.Context) error {
	logger, err := fleetgen.NewLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	dirName := c.Args().First()
	if dirName == "" {
		return errors.New("no dataset directory passed")
	}
	files, err := filepath.Glob(filepath.Join(dirName, "*.json"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	plotDir := c.String("plot")
	if plotDir != "" {
		if err := os.MkdirAll(plotDir, 0755); err != nil {
			return err
		}
	}

	fmt.Printf("Name,Nodes,Edges,Vehicles,Capacity,TotalDemand,MinDegree,MaxDegree,MeanDegree,Valid,Comment\n")
	for _, fileName := range files {
		if filepath.Base(fileName) == fleetgen.ManifestName {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(fileName), ".json")
		d, err := fleetgen.ReadFile(fileName)
		if err != nil {
			logger.Warn("skipping file", zap.String("file", fileName), zap.Error(err))
			continue
		}

		st := fleetgen.Summarize(d)
		comment := ""
		verr := fleetgen.Validate(d)
		if verr != nil {
			errs := multierr.Errors(verr)
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			comment = strings.Join(msgs, "; ")
		}
		fmt.Printf("%s,%d,%d,%d,%d,%d,%d,%d,%.4f,%t,%q\n", name, st.Nodes, st.Edges, st.Vehicles, st.Capacity,
			st.TotalDemand, st.MinDegree, st.MaxDegree, st.MeanDegree, verr == nil, comment)

		if plotDir != "" {
			out := filepath.Join(plotDir, name+"_degree.png")
			if err := plotDegrees(name, st.Degrees, out); err != nil {
				return fmt.Errorf("plot %s: %w", name, err)
			}
			logger.Debug("wrote histogram", zap.String("file", out))
		}
	}
	return nil
}
