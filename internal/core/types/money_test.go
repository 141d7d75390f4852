package types

import (
	"math"
	"testing"
)

func TestCeil2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already two decimals", 12.34, 12.34},
		{"rounds up third decimal", 12.341, 12.35},
		{"rounds up tiny fraction", 12.3400001, 12.35},
		{"whole number", 100, 100},
		{"zero", 0, 0},
		{"three times 19.331", 3 * 19.331, 58.00},
		{"binary noise still rounds up", 0.1 + 0.2, 0.31},
		{"negative rounds toward zero", -12.341, -12.34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ceil2(tt.in); got != tt.want {
				t.Errorf("Ceil2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCeil2Idempotent(t *testing.T) {
	for _, v := range []float64{0, 0.01, 19.331, 57.993, 245, 1234.56} {
		once := Ceil2(v)
		if twice := Ceil2(once); twice != once {
			t.Errorf("Ceil2(Ceil2(%v)) = %v, want %v", v, twice, once)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) || !IsFinite(0) || !IsFinite(-3) {
		t.Error("ordinary values must be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("NaN must not be finite")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("infinities must not be finite")
	}
}
