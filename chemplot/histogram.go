/*
 * histogram.go, part of molgeo
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

// Package chemplot draws plots of molecular properties with gonum's plot library.
package chemplot

import (
	"fmt"
	"image/color"

	chem "github.com/rmera/molgeo"
	"github.com/rmera/molgeo/chemstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicHistoPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Bond length"
	p.Y.Label.Text = "Bonds"
	p.Add(plotter.NewGrid())
	return p
}

// LengthHistogramPlot returns a histogram of the given bond lengths, with the given number of bins.
func LengthHistogramPlot(lengths []float64, bins int, title string) (*plot.Plot, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("chemplot: no bonds to plot")
	}
	if bins < 1 {
		return nil, fmt.Errorf("chemplot: invalid number of bins %d", bins)
	}
	p := basicHistoPlot(title)
	h, err := plotter.NewHist(plotter.Values(lengths), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(h)
	return p, nil
}

// LengthHistogram draws a histogram of the given bond lengths and saves it to filename.
// The image format is taken from the extension of filename (e.g. png, svg, pdf).
func LengthHistogram(lengths []float64, bins int, title, filename string) error {
	p, err := LengthHistogramPlot(lengths, bins, title)
	if err != nil {
		return err
	}
	//here I  intentionally shadow err.
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

// BondHistogram draws a histogram of the lengths of the bonds in b and saves it to filename.
func BondHistogram(b chem.Bonds, bins int, title, filename string) error {
	return LengthHistogram(chemstat.BondLengths(b), bins, title, filename)
}
