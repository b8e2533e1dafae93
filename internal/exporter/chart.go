package exporter

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/quality"
)

// Chart dimensions
const (
	chartWidth  = 4 * vg.Inch
	chartHeight = 6 * vg.Inch
	boxWidth    = 40
)

var fenceColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}

// WriteOutlierChart saves a box plot of values with dashed lines at the IQR
// fences of res. The image format follows the extension of path.
// Null and infinite values are left out of the plot.
func WriteOutlierChart(path string, values []float64, res quality.OutlierResult) error {
	var finite []float64
	for _, v := range quality.SortedNonMissing(values) {
		if !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return apperrors.NewInsufficientDataError(fmt.Sprintf("no values to chart for %s", res.Column))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%d outliers)", res.Column, res.Count())
	p.Y.Label.Text = res.Column

	box, err := plotter.NewBoxPlot(vg.Points(boxWidth), 0, plotter.Values(finite))
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrTypeValidation, "box plot", err).WithContext("column", res.Column)
	}
	p.Add(box)
	p.NominalX(res.Column)

	for _, fence := range []struct {
		name  string
		value float64
	}{
		{"lower fence", res.Bounds.Lower},
		{"upper fence", res.Bounds.Upper},
	} {
		v := fence.value
		line := plotter.NewFunction(func(float64) float64 { return v })
		line.Color = fenceColor
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s %s", fence.name, formatBound(v)), line)
	}
	// Keep both fences inside the plotted range
	p.Y.Min = min(p.Y.Min, res.Bounds.Lower)
	p.Y.Max = max(p.Y.Max, res.Bounds.Upper)

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return apperrors.NewIOError("save outlier chart", err).WithContext("file", path)
	}
	return nil
}
