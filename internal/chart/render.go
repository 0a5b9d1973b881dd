// Package chart renders shoe creation charts and tracks the live chart
// owned by each session.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// Chart labels.
const (
	Title       = "Shoes Created Over Time"
	XAxisName   = "Date"
	YAxisName   = "Number of Shoes"
	SeriesName  = "Shoes Created"
	NoDataText  = "No data for the selected filters."
	PNGFilename = "shoe_creation_chart.png"
)

const (
	width    = 960
	height   = 420
	maxTicks = 8
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no chart data")

var (
	lineColor = drawing.ColorFromHex("36a2eb")
	fillColor = drawing.ColorFromHex("36a2eb").WithAlpha(48)
)

// Image is one chart rendered in both formats.
type Image struct {
	SVG []byte
	PNG []byte
}

// Render plots points as a line chart. Points are sorted by date; an
// unparseable date is an error.
func Render(points []model.ChartPoint) (Image, error) {
	if len(points) == 0 {
		return Image{}, ErrNoData
	}

	sorted := make([]model.ChartPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	xs := make([]time.Time, 0, len(sorted))
	ys := make([]float64, 0, len(sorted))
	peak := 0
	for _, p := range sorted {
		t, err := p.Time()
		if err != nil {
			return Image{}, fmt.Errorf("chart point %q: %w", p.Date, err)
		}
		xs = append(xs, t)
		ys = append(ys, float64(p.Count))
		peak = max(peak, p.Count)
	}

	graph := newGraph(xs, ys, peak)

	var svg, png bytes.Buffer
	if err := graph.Render(gochart.SVG, &svg); err != nil {
		return Image{}, fmt.Errorf("render svg: %w", err)
	}
	if err := graph.Render(gochart.PNG, &png); err != nil {
		return Image{}, fmt.Errorf("render png: %w", err)
	}
	return Image{SVG: svg.Bytes(), PNG: png.Bytes()}, nil
}

func newGraph(xs []time.Time, ys []float64, peak int) gochart.Chart {
	// go-chart rejects zero-width ranges, so a single day is padded on both sides.
	first, last := xs[0], xs[len(xs)-1]
	if !last.After(first) {
		first = first.AddDate(0, 0, -1)
		last = last.AddDate(0, 0, 1)
	}

	top, step := yScale(peak)

	return gochart.Chart{
		Title:  Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 24, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:           XAxisName,
			ValueFormatter: gochart.TimeDateValueFormatter,
			Range: &gochart.ContinuousRange{
				Min: gochart.TimeToFloat64(first),
				Max: gochart.TimeToFloat64(last),
			},
		},
		YAxis: gochart.YAxis{
			Name:  YAxisName,
			Range: &gochart.ContinuousRange{Min: 0, Max: top},
			Ticks: yTicks(top, step),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    SeriesName,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					FillColor:   fillColor,
					DotColor:    lineColor,
					DotWidth:    3,
				},
			},
		},
	}
}

// yScale picks an integer axis top and tick step covering peak.
func yScale(peak int) (top, step float64) {
	if peak < 1 {
		peak = 1
	}
	step = math.Ceil(float64(peak) / maxTicks)
	top = step * math.Ceil(float64(peak+1)/step)
	return top, step
}

func yTicks(top, step float64) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, int(top/step)+1)
	for v := 0.0; v <= top; v += step {
		ticks = append(ticks, gochart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return ticks
}
