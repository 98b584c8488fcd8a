package performance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngineering(t *testing.T) {
	tests := []struct {
		in         float64
		wantScaled float64
		wantPrefix string
	}{
		{0, 0, ""},
		{1, 1, ""},
		{999, 999, ""},
		{1234, 1.234, "k"},
		{2_500_000, 2.5, "M"},
		{0.001, 1, "m"},
		{0.0000123, 12.3, "µ"},
		{3.2e-9, 3.2, "n"},
		{7e-13, 700, "f"},
	}

	for _, tt := range tests {
		scaled, prefix := Engineering(tt.in)
		assert.InDelta(t, tt.wantScaled, scaled, 1e-9, "Engineering(%v)", tt.in)
		assert.Equal(t, tt.wantPrefix, prefix, "Engineering(%v)", tt.in)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "12.3 µs", FormatValue(0.0000123, "s"))
	assert.Equal(t, "1.5 ks", FormatValue(1500, "s"))
	assert.Equal(t, "???.? s ", FormatValue(math.NaN(), "s"))
	assert.Equal(t, "???.? s ", FormatValue(math.Inf(1), "s"))
}

func TestFormatSample(t *testing.T) {
	s := Sample{
		N:       1000,
		Repeats: 100,
		Times:   []time.Duration{time.Second, 2 * time.Second},
	}

	got := FormatSample(s)
	assert.Contains(t, got, "1000 items, 100 loops:")
	assert.Contains(t, got, "per item")
	assert.Contains(t, got, "10 µs")   // 1s / (100*1000)
	assert.Contains(t, got, "3 s")     // total
}
