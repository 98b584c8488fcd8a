package performance

import (
	"fmt"
	"math"
)

// siPrefixes covers 10⁻²⁴ (yocto) through 10²⁴ (yotta); index 8 is the
// empty prefix for values in [1, 1000).
var siPrefixes = [...]string{
	"y", "z", "a", "f", "p", "n", "µ", "m", "",
	"k", "M", "G", "T", "P", "E", "Z", "Y",
}

// Engineering rescales v to the range [1, 1000) and returns the scaled
// value with its SI prefix, e.g. 0.0000123 → (12.3, "µ"). Values outside
// the prefix table clamp to the outermost prefix.
func Engineering(v float64) (float64, string) {
	if v == 0 {
		return 0, ""
	}

	exp := int(math.Floor(math.Log10(math.Abs(v)) / 3))
	if exp < -8 {
		exp = -8
	}
	if exp > 8 {
		exp = 8
	}

	return v / math.Pow(1000, float64(exp)), siPrefixes[exp+8]
}

// FormatValue formats v with an SI prefix and unit in constant width,
// e.g. "12.34 µs". NaN and Inf render as a placeholder so that columns
// stay aligned when a statistic is unavailable.
func FormatValue(v float64, unit string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("???.? %-2s", unit)
	}

	scaled, prefix := Engineering(v)
	return fmt.Sprintf("%.4g %-2s", scaled, prefix+unit)
}

// FormatSample renders one timing line in the harness layout:
//
//	  102400 items, 100 loops:  13.38 ns (± 120.5 ps)  per item  (410.9 ms total)
func FormatSample(s Sample) string {
	return fmt.Sprintf("%8d items, %d loops:  %s (± %s)  per item  (%s total)",
		s.N, s.Repeats,
		FormatValue(s.PerItemMin(), "s"),
		FormatValue(s.Err(), "s"),
		FormatValue(s.Total(), "s"),
	)
}
