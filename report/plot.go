package report

import (
	"errors"
	"github.com/omicsForestry/mSINGSlw/score"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
	"math"
)

// ErrNothingToPlot is returned when no sample has a determined score.
var ErrNothingToPlot = errors.New("no sample has a determined score")

// PlotScores draws a bar per scored sample. Samples with undetermined scores are left out.
// The image format is taken from the file extension (e.g. .pdf, .png, .svg).
func PlotScores(filename string, results []score.Result) error {
	var values plotter.Values
	var names sampleTicks
	for i := range results {
		if !results[i].Determined {
			continue
		}
		values = append(values, results[i].Score)
		names = append(names, results[i].Sample)
	}
	if len(values) == 0 {
		return ErrNothingToPlot
	}

	pl := plot.New()
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	pl.Add(bars)

	pl.Title.Text = "Microsatellite instability"
	pl.Y.Label.Text = "Unstable loci (%)"
	pl.Y.Min = 0
	pl.Y.Max = 100
	pl.X.Label.Text = "Sample"
	pl.X.Tick.Marker = names
	pl.X.Tick.Label.Rotation = math.Pi / 2
	pl.X.Tick.Label.YAlign = -0.35
	pl.X.Tick.Label.XAlign = text.XRight
	pl.X.Tick.Label.Font.Size = 8
	pl.X.Tick.LineStyle = draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(0.5),
	}

	width := vg.Length(len(values))*vg.Points(18) + 4*vg.Centimeter
	return pl.Save(width, 12*vg.Centimeter, filename)
}

type sampleTicks []string

func (s sampleTicks) Ticks(min, max float64) []plot.Tick {
	var ans []plot.Tick
	for i := range s {
		if float64(i) >= min && float64(i) <= max {
			ans = append(ans, plot.Tick{Value: float64(i), Label: s[i]})
		}
	}
	return ans
}
