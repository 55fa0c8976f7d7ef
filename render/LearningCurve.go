package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/samuelfneumann/treasurehunt/utils/intutils"
)

// DefaultWindow is the default number of episodes averaged over when
// smoothing learning curves
const DefaultWindow = 50

// MovingAverage returns the trailing moving average of values. The i-th
// entry averages values[max(0, i-window+1) : i+1].
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	avg := make([]float64, len(values))
	for i := range values {
		start := intutils.Max(0, i-window+1)
		avg[i] = stat.Mean(values[start:i+1], nil)
	}
	return avg
}

// LearningCurve writes an HTML page with charts of the moving average
// episodic return and success rate to w
func LearningCurve(w io.Writer, returns []float64, successes []int,
	window int) error {
	if len(returns) != len(successes) {
		return fmt.Errorf("learningCurve: have %d returns and %d successes",
			len(returns), len(successes))
	}

	episodes := make([]string, len(returns))
	for i := range episodes {
		episodes[i] = strconv.Itoa(i + 1)
	}

	success := make([]float64, len(successes))
	for i, s := range successes {
		success[i] = float64(s)
	}

	page := components.NewPage()
	page.AddCharts(
		lineChart("Episodic Return", "return", episodes,
			MovingAverage(returns, window), returns),
		lineChart("Success Rate", "success rate", episodes,
			MovingAverage(success, window), nil),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("learningCurve: %w", err)
	}
	return nil
}

// lineChart creates a line chart of a smoothed series, and optionally
// of the raw series it was smoothed from
func lineChart(title, yName string, x []string, smoothed,
	raw []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)

	line.SetXAxis(x)
	if raw != nil {
		line.AddSeries("raw", lineData(raw))
	}
	line.AddSeries("moving average", lineData(smoothed))
	return line
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i] = opts.LineData{Value: v}
	}
	return items
}

// LearningCurvePNG saves a plot of the episodic return and its moving
// average to filename
func LearningCurvePNG(filename string, returns []float64, window int) error {
	p := plot.New()
	p.Title.Text = "Learning Progress"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Return"

	raw, err := plotter.NewLine(points(returns))
	if err != nil {
		return fmt.Errorf("learningCurvePNG: could not create line "+
			"plotter: %w", err)
	}
	raw.Color = color.RGBA{180, 180, 180, 255}

	smoothed, err := plotter.NewLine(points(MovingAverage(returns, window)))
	if err != nil {
		return fmt.Errorf("learningCurvePNG: could not create line "+
			"plotter: %w", err)
	}
	smoothed.Color = color.RGBA{70, 160, 90, 255}
	smoothed.Width = vg.Points(2)

	p.Add(raw, smoothed)
	p.Legend.Add("return", raw)
	p.Legend.Add(fmt.Sprintf("moving average (%d)", window), smoothed)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("learningCurvePNG: could not save plot: %w", err)
	}
	return nil
}

func points(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	return pts
}
