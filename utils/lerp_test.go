// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "below range", input: -0.5, want: 0},
		{name: "zero", input: 0, want: 0},
		{name: "inside range", input: 0.25, want: 0.25},
		{name: "one", input: 1, want: 1},
		{name: "above range", input: 7, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp01(tt.input); got != tt.want {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLerpPow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b, f, p float64
		want       float64
	}{
		{name: "linear midpoint", a: 0, b: 1, f: 0.5, p: 1, want: 0.5},
		{name: "quadratic midpoint", a: 0, b: 1, f: 0.5, p: 2, want: 0.25},
		{name: "square root midpoint", a: 0, b: 1, f: 0.25, p: 0.5, want: 0.5},
		{name: "start returns a", a: 3, b: 9, f: 0, p: 2, want: 3},
		{name: "end returns b", a: 3, b: 9, f: 1, p: 2, want: 9},
		{name: "fraction clamped low", a: 3, b: 9, f: -4, p: 1, want: 3},
		{name: "fraction clamped high", a: 3, b: 9, f: 4, p: 1, want: 9},
		{name: "descending", a: 1, b: 0, f: 0.5, p: 2, want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := LerpPow(tt.a, tt.b, tt.f, tt.p)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LerpPow(%v, %v, %v, %v) = %v, want %v", tt.a, tt.b, tt.f, tt.p, got, tt.want)
			}
		})
	}
}

// BenchmarkLerpPow tests performance and allocations
func BenchmarkLerpPow(b *testing.B) {
	var result float64

	b.ReportAllocs()

	for i := range b.N {
		result = LerpPow(0.2, 0.8, float64(i%100)/100, 2)
	}

	_ = result
}
