package charts

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/NeuralTrust/CommentGuard/pkg/report"
)

// palette cycles across offense-type slices.
var palette = []drawing.Color{
	drawing.ColorFromHex("ff9999"),
	drawing.ColorFromHex("66b3ff"),
	drawing.ColorFromHex("99ff99"),
	drawing.ColorFromHex("ffcc99"),
}

var barColor = drawing.ColorFromHex("ff6b6b")

// WritePie renders the offense-type distribution as a pie chart PNG. With no
// offensive records there is nothing to visualize; no file is written and no
// error is returned.
func WritePie(path string, r report.Report) error {
	if len(r.TypeCounts) == 0 {
		return nil
	}

	values := make([]chart.Value, 0, len(r.TypeCounts))
	for i, tc := range r.TypeCounts {
		values = append(values, chart.Value{
			Value: float64(tc.Count),
			Label: fmt.Sprintf("%s (%d)", tc.OffenseType, tc.Count),
			Style: chart.Style{FillColor: palette[i%len(palette)]},
		})
	}

	pie := chart.PieChart{
		Title:  "Distribution of Offense Types",
		Width:  512,
		Height: 512,
		Values: values,
	}

	return render(path, func(f *os.File) error {
		return pie.Render(chart.PNG, f)
	})
}

// WriteBar renders the offense-type distribution as a bar chart PNG. Same
// empty-set behavior as WritePie.
func WriteBar(path string, r report.Report) error {
	if len(r.TypeCounts) == 0 {
		return nil
	}

	bars := make([]chart.Value, 0, len(r.TypeCounts))
	for _, tc := range r.TypeCounts {
		bars = append(bars, chart.Value{
			Value: float64(tc.Count),
			Label: tc.OffenseType,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
	}

	bar := chart.BarChart{
		Title:    "Offense Type Distribution",
		Width:    800,
		Height:   480,
		BarWidth: 60,
		Bars:     bars,
	}

	return render(path, func(f *os.File) error {
		return bar.Render(chart.PNG, f)
	})
}

func render(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
