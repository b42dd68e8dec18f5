// SPDX-License-Identifier: EPL-2.0

// Package legacy holds the single-track binaural envelope used by the older
// HBX player family: one scalar carrier frequency and three envelopes that
// share a time axis.
package legacy

import (
	"github.com/ossrs/go-oryx-lib/errors"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ik5/entrain/envelope"
)

// DefaultBaseFrequency is the carrier a fresh envelope starts with, in Hz.
const DefaultBaseFrequency = 220.0

// BinauralEnvelope is the legacy preset. The three envelopes are written
// together by SetPoint, so they normally share one time axis; nothing
// enforces that when they are built by hand.
type BinauralEnvelope struct {
	baseFrequency     float64
	binauralFrequency *envelope.Envelope
	binauralVolume    *envelope.Envelope
	noiseVolume       *envelope.Envelope
}

// Row is one line of the legacy tables: the three envelope points found at
// the same index, with the binaural frequency point's time.
type Row struct {
	T                          float64
	BinauralFrequency          float64
	BinauralFrequencyCurvature float64
	BinauralVolume             float64
	BinauralVolumeCurvature    float64
	NoiseVolume                float64
	NoiseVolumeCurvature       float64
}

// New returns an empty envelope with the default base frequency.
func New() *BinauralEnvelope {
	return &BinauralEnvelope{
		baseFrequency:     DefaultBaseFrequency,
		binauralFrequency: &envelope.Envelope{},
		binauralVolume:    &envelope.Envelope{},
		noiseVolume:       &envelope.Envelope{},
	}
}

// FromEnvelopes builds a legacy envelope from independently edited envelopes.
// Each is copied; a nil envelope is treated as empty.
func FromEnvelopes(base float64, binauralFrequency, binauralVolume, noiseVolume *envelope.Envelope) *BinauralEnvelope {
	own := func(e *envelope.Envelope) *envelope.Envelope {
		if e == nil {
			return &envelope.Envelope{}
		}
		return e.Clone()
	}

	return &BinauralEnvelope{
		baseFrequency:     base,
		binauralFrequency: own(binauralFrequency),
		binauralVolume:    own(binauralVolume),
		noiseVolume:       own(noiseVolume),
	}
}

func (b *BinauralEnvelope) BaseFrequency() float64 { return b.baseFrequency }

func (b *BinauralEnvelope) SetBaseFrequency(f float64) { b.baseFrequency = f }

// SetPoint writes one point into each of the three envelopes at time t.
// Either all three are written or none is.
func (b *BinauralEnvelope) SetPoint(r Row) error {
	fields := [...]struct {
		env      *envelope.Envelope
		value, c float64
	}{
		{b.binauralFrequency, r.BinauralFrequency, r.BinauralFrequencyCurvature},
		{b.binauralVolume, r.BinauralVolume, r.BinauralVolumeCurvature},
		{b.noiseVolume, r.NoiseVolume, r.NoiseVolumeCurvature},
	}

	// A bad field must leave b untouched.
	for _, f := range fields {
		if err := envelope.CheckPoint(r.T, f.value, f.c); err != nil {
			return errors.Wrapf(err, "point at t=%v", r.T)
		}
	}

	for _, f := range fields {
		if err := f.env.SetPoint(r.T, f.value, f.c); err != nil {
			return errors.Wrapf(err, "point at t=%v", r.T)
		}
	}

	return nil
}

// BinauralFrequency returns a copy of the beat frequency envelope.
func (b *BinauralEnvelope) BinauralFrequency() *envelope.Envelope { return b.binauralFrequency.Clone() }

// BinauralVolume returns a copy of the beat volume envelope.
func (b *BinauralEnvelope) BinauralVolume() *envelope.Envelope { return b.binauralVolume.Clone() }

// NoiseVolume returns a copy of the noise volume envelope.
func (b *BinauralEnvelope) NoiseVolume() *envelope.Envelope { return b.noiseVolume.Clone() }

// Rows pairs the three envelopes by index, the way every legacy format lays
// them out. The binaural frequency envelope is authoritative: its length sets
// the row count, and a missing point in the other two reads as zero.
func (b *BinauralEnvelope) Rows() []Row {
	bf := b.binauralFrequency.Points()
	bv := b.binauralVolume.Points()
	nv := b.noiseVolume.Points()

	rows := make([]Row, len(bf))
	for i, p := range bf {
		rows[i] = Row{T: p.T, BinauralFrequency: p.Value, BinauralFrequencyCurvature: p.Curvature}
		if i < len(bv) {
			rows[i].BinauralVolume, rows[i].BinauralVolumeCurvature = bv[i].Value, bv[i].Curvature
		}
		if i < len(nv) {
			rows[i].NoiseVolume, rows[i].NoiseVolumeCurvature = nv[i].Value, nv[i].Curvature
		}
	}

	return rows
}

// Start, End and Length follow the binaural frequency envelope.
func (b *BinauralEnvelope) Start() float64  { return b.binauralFrequency.Start() }
func (b *BinauralEnvelope) End() float64    { return b.binauralFrequency.End() }
func (b *BinauralEnvelope) Length() float64 { return b.binauralFrequency.Length() }

// Clone returns a deep copy.
func (b *BinauralEnvelope) Clone() *BinauralEnvelope {
	return &BinauralEnvelope{
		baseFrequency:     b.baseFrequency,
		binauralFrequency: b.binauralFrequency.Clone(),
		binauralVolume:    b.binauralVolume.Clone(),
		noiseVolume:       b.noiseVolume.Clone(),
	}
}

// Equal compares base frequency and all three envelopes within tol.
func (b *BinauralEnvelope) Equal(o *BinauralEnvelope, tol float64) bool {
	return o != nil &&
		scalar.EqualWithinAbsOrRel(b.baseFrequency, o.baseFrequency, tol, tol) &&
		b.binauralFrequency.Equal(o.binauralFrequency, tol) &&
		b.binauralVolume.Equal(o.binauralVolume, tol) &&
		b.noiseVolume.Equal(o.noiseVolume, tol)
}
