// SPDX-License-Identifier: EPL-2.0

package importer

import (
	"slices"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/envelope"
	"github.com/ik5/entrain/legacy"
	"github.com/ik5/entrain/preset"
)

// Flatten is the reverse of Project, for writing a preset back to a legacy
// container. Only the given track is kept. The carrier is its base frequency
// at t=0. Every time that holds a point in the noise, entrainment or volume
// envelope becomes one row, valued by evaluating all three envelopes there.
// A row keeps the curvature of a point that sits exactly at its time and is
// linear otherwise.
func Flatten(p *preset.Preset, track int) (*legacy.BinauralEnvelope, error) {
	t, err := p.EntrainmentTrack(track)
	if err != nil {
		return nil, err
	}

	noise, ent, vol := p.NoiseEnvelope(), t.EntrainmentFrequency(), t.VolumeEnvelope()

	var times []float64
	for _, e := range []*envelope.Envelope{noise, ent, vol} {
		for _, pt := range e.Points() {
			times = append(times, pt.T)
		}
	}
	slices.Sort(times)
	times = slices.Compact(times)

	be := legacy.New()
	be.SetBaseFrequency(t.BaseFrequency().ValueAt(0))
	for _, at := range times {
		row := legacy.Row{
			T:                          at,
			BinauralFrequency:          ent.ValueAt(at),
			BinauralFrequencyCurvature: curvatureAt(ent, at),
			BinauralVolume:             vol.ValueAt(at),
			BinauralVolumeCurvature:    curvatureAt(vol, at),
			NoiseVolume:                noise.ValueAt(at),
			NoiseVolumeCurvature:       curvatureAt(noise, at),
		}
		if err := be.SetPoint(row); err != nil {
			return nil, errors.Wrapf(err, "flatten t=%v", at)
		}
	}

	return be, nil
}

func curvatureAt(e *envelope.Envelope, t float64) float64 {
	for _, pt := range e.Points() {
		if pt.T == t {
			return pt.Curvature
		}
	}

	return envelope.Linear
}
