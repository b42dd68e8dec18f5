// SPDX-License-Identifier: EPL-2.0

// Package presettest holds fixtures shared by the codec, importer and preset
// tests.
package presettest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/entrain/legacy"
)

// Tolerance is the comparison tolerance for values that went through text.
const Tolerance = 1e-12

// NewLegacy builds a legacy envelope from rows, failing the test on error.
func NewLegacy(tb testing.TB, base float64, rows ...legacy.Row) *legacy.BinauralEnvelope {
	tb.Helper()

	be := legacy.New()
	be.SetBaseFrequency(base)
	for _, r := range rows {
		require.NoError(tb, be.SetPoint(r))
	}

	return be
}

// Ramp returns n rows starting at start seconds, step seconds apart, with the
// beat frequency falling from 14 Hz and every curvature set to curvature.
func Ramp(n int, start, step, curvature float64) []legacy.Row {
	rows := make([]legacy.Row, n)
	for i := range n {
		rows[i] = legacy.Row{
			T:                          start + float64(i)*step,
			BinauralFrequency:          14 - float64(i)*0.75,
			BinauralFrequencyCurvature: curvature,
			BinauralVolume:             0.5 + float64(i%3)*0.125,
			BinauralVolumeCurvature:    curvature,
			NoiseVolume:                0.25 + float64(i%2)*0.5,
			NoiseVolumeCurvature:       curvature,
		}
	}

	return rows
}

// Session is the typical legacy session: a 20 minute descent from beta to
// theta with eased segments.
func Session(tb testing.TB) *legacy.BinauralEnvelope {
	tb.Helper()

	return NewLegacy(tb, 220, Ramp(5, 30, 300, 2)...)
}

// EveryCharacter is an envelope whose canonical text uses each character of
// the HES alphabet: all ten digits, '.', ',', '-' and the newline.
func EveryCharacter(tb testing.TB) *legacy.BinauralEnvelope {
	tb.Helper()

	return NewLegacy(tb, 123.456789,
		legacy.Row{T: 0, BinauralFrequency: 10.5, BinauralFrequencyCurvature: 1, BinauralVolume: 0.25, BinauralVolumeCurvature: 0.5, NoiseVolume: 0.75, NoiseVolumeCurvature: 2},
		legacy.Row{T: 60.125, BinauralFrequency: -3.875, BinauralFrequencyCurvature: 1.5, BinauralVolume: 0.9, BinauralVolumeCurvature: 1, NoiseVolume: 0.36, NoiseVolumeCurvature: 1},
		legacy.Row{T: 1234.5678, BinauralFrequency: 7.0625, BinauralFrequencyCurvature: 1, BinauralVolume: 0, BinauralVolumeCurvature: 1, NoiseVolume: 0.1, NoiseVolumeCurvature: 3},
	)
}

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(path, data, 0o644))
	return path
}
