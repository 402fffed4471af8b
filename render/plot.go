package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotTimeline renders a horizontal timeline of the critical path, one bar
// per node sized by its runtime and labelled with the index of the block
// it belongs to, and saves it as a PNG at path. All bars share one color.
func PlotTimeline(cpath []int, runtime map[int]int64, blockOf map[int]int, path string) error {
	p := plot.New()
	p.Title.Text = "critical path timeline"
	p.X.Label.Text = "elapsed runtime"
	p.Y.Label.Text = "node"

	bars := make(plotter.Values, len(cpath))
	for i, id := range cpath {
		bars[i] = float64(runtime[id])
	}

	barChart, err := plotter.NewBarChart(bars, vg.Points(14))
	if err != nil {
		return fmt.Errorf("render: building bar chart: %w", err)
	}
	barChart.Horizontal = true
	p.Add(barChart)

	labels := make([]string, len(cpath))
	for i, id := range cpath {
		labels[i] = fmt.Sprintf("node %d (blk %d)", id, blockOf[id])
	}
	p.NominalY(labels...)

	return p.Save(8*vg.Inch, 0.4*float64(len(cpath))*vg.Inch, path)
}
