package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotDegrees saves a histogram of node degrees with one bin per degree value.
func plotDegrees(title string, degrees []int, file string) error {
	values := make(plotter.Values, len(degrees))
	hi := 0
	for i, d := range degrees {
		values[i] = float64(d)
		if d > hi {
			hi = d
		}
	}
	bins := hi
	if bins < 1 {
		bins = 1
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "degree"
	p.Y.Label.Text = "nodes"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, file)
}
