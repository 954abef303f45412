package uncertainty

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		uncertainty float64
		unit        string
		want        string
	}{
		{
			name:        "no unit",
			value:       10,
			uncertainty: 0.05,
			want:        "10.0000000000 ± 0.0500000000",
		},
		{
			name:        "with unit",
			value:       9.81,
			uncertainty: 0.02,
			unit:        "m/s^2",
			want:        "9.8100000000 ± 0.0200000000 m/s^2",
		},
		{
			name:        "negative value",
			value:       -2.5,
			uncertainty: 0.125,
			want:        "-2.5000000000 ± 0.1250000000",
		},
		{
			name:        "tiny uncertainty stays fixed point",
			value:       1,
			uncertainty: 1e-7,
			want:        "1.0000000000 ± 0.0000001000",
		},
		{
			name:        "large value stays fixed point",
			value:       123456,
			uncertainty: 3,
			want:        "123456.0000000000 ± 3.0000000000",
		},
		{
			name:        "whitespace-only unit trimmed",
			value:       0,
			uncertainty: 0,
			unit:        "  ",
			want:        "0.0000000000 ± 0.0000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value, tt.uncertainty, tt.unit))
		})
	}
}

func TestFormatShape(t *testing.T) {
	shape := regexp.MustCompile(`^-?\d+\.\d{10} ± \d+\.\d{10}$`)
	values := []float64{0, 1, -1, 3.14159265358979, 1e-12, 98765.4321, -0.5}
	for _, v := range values {
		for _, u := range []float64{0, 0.001, 2.5, 1e-9} {
			got := Format(v, u, "")
			assert.Regexp(t, shape, got)
		}
	}
}

func TestResultString(t *testing.T) {
	r := Result{Value: 8, Uncertainty: 0.3, Unit: "cm"}
	assert.Equal(t, "8.0000000000 ± 0.3000000000 cm", r.String())
}

func TestResultRelative(t *testing.T) {
	assert.InDelta(t, 0.035, Result{Value: 5, Uncertainty: 0.175}.Relative(), 1e-12)
	assert.InDelta(t, 0.1, Result{Value: -2, Uncertainty: 0.2}.Relative(), 1e-12)
	assert.Zero(t, Result{Value: 0, Uncertainty: 1}.Relative())
}
