package render

import (
	"fmt"
	"io"
	"math"

	"statbook/domain/core"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ResidualHistogram writes an HTML histogram page for a residual list, e.g.
// the flat residuals from factor.ResidualDiagnostics. When bins <= 0 the
// bin count follows Sturges' rule.
func ResidualHistogram(w io.Writer, residuals []float64, bins int) error {
	if len(residuals) == 0 {
		return core.NewInvalidInputError("residuals", "must not be empty")
	}
	if bins <= 0 {
		bins = sturges(len(residuals))
	}

	lo, hi := residuals[0], residuals[0]
	for _, v := range residuals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range residuals {
		idx := 0
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	labels := make([]string, bins)
	data := make([]opts.BarData, bins)
	for i := range counts {
		labels[i] = fmt.Sprintf("%.3f", lo+(float64(i)+0.5)*width)
		data[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Residuals"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Residual"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("residuals", data)

	return bar.Render(w)
}

// sturges returns the Sturges'-rule bin count for n observations.
func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}
