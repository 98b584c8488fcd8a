package performance

import (
	"fmt"
	"io"
	"math"
	"strings"

	lsqErrors "github.com/ezoic/lstsqr/pkg/errors"
)

// Bar chart glyphs: full cells, eighth-cell remainders, and the hatched
// tail marking a bar that runs off the chart.
const (
	node        = "█"
	overflowEnd = "▓▓▒▒░░"
	overflowLen = 6
)

var remainder = []rune(" ▏▎▍▌▋▊▉")

type chartConfig struct {
	maximum   float64
	formatter func(float64) string
}

// ChartOption configures a Chart call.
type ChartOption func(*chartConfig)

// WithMaximum scales bars so that max fills the chart exactly; values above
// it overflow into the hatched tail. Without a maximum, one chart cell
// represents one unit of value.
func WithMaximum(max float64) ChartOption {
	return func(cfg *chartConfig) {
		cfg.maximum = max
	}
}

// WithFormatter sets the function used to render each value at the end of
// its bar. The default is %g.
func WithFormatter(f func(float64) string) ChartOption {
	return func(cfg *chartConfig) {
		cfg.formatter = f
	}
}

// Chart writes a horizontal unicode bar chart to w, one row per name,
// fitted to the given total width in character cells. Bars are drawn with
// full-cell and eighth-cell block glyphs inside a box-drawing frame, with
// right-aligned names on the left and formatted values on the right.
//
// Errors:
//   - ValueError: if names is empty or width leaves no room for bars
//   - DimensionError: if names and values have different lengths
func Chart(w io.Writer, names []string, values []float64, width int, opts ...ChartOption) error {
	if len(names) == 0 {
		return lsqErrors.NewValueError("Chart", "no rows to plot")
	}
	if len(names) != len(values) {
		return lsqErrors.NewDimensionError("Chart", len(names), len(values), 0)
	}

	cfg := chartConfig{
		formatter: func(v float64) string { return fmt.Sprintf("%g", v) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	nameSpace := 0
	for _, name := range names {
		if len(name) > nameSpace {
			nameSpace = len(name)
		}
	}
	nameSpace += 3

	formatted := make([]string, len(values))
	dataSpace := 0
	for i, v := range values {
		formatted[i] = cfg.formatter(v)
		if len(formatted[i]) > dataSpace {
			dataSpace = len(formatted[i])
		}
	}

	barSpace := width - 4 - nameSpace - dataSpace
	if barSpace < overflowLen {
		return lsqErrors.NewValueError("Chart", "width too small for bar area")
	}

	overflowBar := strings.Repeat(node, barSpace-overflowLen) + overflowEnd

	margin := strings.Repeat(" ", nameSpace+1)
	fmt.Fprintf(w, "%s┏%s┓\n", margin, strings.Repeat("━", barSpace))

	for i, v := range values {
		if cfg.maximum > 0 {
			v = v * float64(barSpace) / cfg.maximum
		} else {
			v /= float64(len(remainder))
		}

		var bar string
		if v > float64(barSpace) {
			bar = overflowBar
		} else {
			notches := int(math.Round(v * float64(len(remainder))))
			full := notches / len(remainder)
			part := notches % len(remainder)
			bar = strings.Repeat(node, full)
			if part > 0 {
				bar += string(remainder[part])
			}
			bar += strings.Repeat(" ", barSpace-full-padWidth(part))
		}

		fmt.Fprintf(w, "%*s ┃%s┃ %s\n", nameSpace, names[i], bar, formatted[i])
	}

	fmt.Fprintf(w, "%s┗%s┛\n", margin, strings.Repeat("━", barSpace))

	return nil
}

// padWidth returns the cells consumed by the remainder glyph, which is one
// cell when present and zero when the partial notch count is zero.
func padWidth(part int) int {
	if part > 0 {
		return 1
	}
	return 0
}
