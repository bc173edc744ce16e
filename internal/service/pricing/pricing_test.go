package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         any
		wantDisplay float64
		wantCompare float64
	}{
		{"숫자", 10.0, 20, 40},
		{"정수", 5, 10, 20},
		{"숫자 문자열", "19.99", 39.98, 79.96},
		{"0", 0, 0, 0},
		{"nil", nil, 0, 0},
		{"빈 문자열", "", 0, 0},
		{"숫자 아님", "N/A", 0, 0},
		{"NaN", math.NaN(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Adjust(tt.raw)
			assert.InDelta(t, tt.wantDisplay, got.Display, 1e-9)
			assert.InDelta(t, tt.wantCompare, got.Compare, 1e-9)
		})
	}
}

func TestAdjust_MultiplierProperty(t *testing.T) {
	t.Parallel()

	for _, p := range []float64{0, 0.01, 1, 12.34, 999.5, 1e6} {
		got := Adjust(p)
		assert.InDelta(t, 2*p, got.Display, 1e-6)
		assert.InDelta(t, 4*p, got.Compare, 1e-6)
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "40.00", FormatAmount(40))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "39.98", FormatAmount(39.98))
	assert.Equal(t, "1.01", FormatAmount(1.005+0.005))
}
