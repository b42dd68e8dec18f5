// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/envelope"
)

// Limits are the ranges an editor or renderer accepts.
type Limits struct {
	MaxBaseFrequency        float64
	MaxEntrainmentFrequency float64
	// MinLength is inclusive, MaxLength exclusive.
	MinLength float32
	MaxLength float32
}

// DefaultLimits returns the limits of the reference player.
func DefaultLimits() Limits {
	return Limits{
		MaxBaseFrequency:        1500,
		MaxEntrainmentFrequency: 40,
		MinLength:               10,
		MaxLength:               36000,
	}
}

// Validate checks p against l. Violations wrap codec.ErrUnsupportedFeature.
func (p *Preset) Validate(l Limits) error {
	if p.Length < l.MinLength || p.Length >= l.MaxLength {
		return errors.Wrapf(codec.ErrUnsupportedFeature, "length %v outside [%v, %v)", p.Length, l.MinLength, l.MaxLength)
	}
	if p.Loops() && p.Loop >= p.Length {
		return errors.Wrapf(codec.ErrUnsupportedFeature, "loop point %v not before length %v", p.Loop, p.Length)
	}
	if err := inRange(p.noise, 0, 1); err != nil {
		return errors.Wrapf(err, "noise")
	}

	for i, t := range p.tracks {
		if t.Volume < 0 || t.Volume > 1 {
			return errors.Wrapf(codec.ErrUnsupportedFeature, "track %d volume %v outside [0, 1]", i, t.Volume)
		}
		if err := inRange(t.baseFrequency, 0, l.MaxBaseFrequency); err != nil {
			return errors.Wrapf(err, "track %d base frequency", i)
		}
		if err := inRange(t.entrainmentFrequency, 0, l.MaxEntrainmentFrequency); err != nil {
			return errors.Wrapf(err, "track %d entrainment frequency", i)
		}
		if err := inRange(t.volume, 0, 1); err != nil {
			return errors.Wrapf(err, "track %d volume envelope", i)
		}
	}

	return nil
}

// Segments interpolate between their endpoints, so checking the points covers
// every value the envelope can take.
func inRange(e *envelope.Envelope, lo, hi float64) error {
	for _, pt := range e.Points() {
		if pt.Value < lo || pt.Value > hi {
			return errors.Wrapf(codec.ErrUnsupportedFeature, "value %v at t=%v outside [%v, %v]", pt.Value, pt.T, lo, hi)
		}
	}

	return nil
}
