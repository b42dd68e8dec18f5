// SPDX-License-Identifier: EPL-2.0

package importer

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/legacy"
	"github.com/ik5/entrain/preset"
)

// Project converts be into a preset with one entrainment track.
//
// The carrier becomes a flat envelope at the legacy base frequency. Rows are
// taken in binaural frequency order and shifted so the first one sits at t=0;
// the first row overwrites index 0 of each envelope and the rest are appended
// as linear points.
func Project(be *legacy.BinauralEnvelope, title string) (*preset.Preset, error) {
	p := preset.New(float32(be.Length()), preset.NoLoop, title, "", Description)

	track, err := p.EntrainmentTrack(0)
	if err != nil {
		return nil, err
	}
	track.Volume = 1

	noise := p.NoiseEnvelope()
	ent := track.EntrainmentFrequency()
	vol := track.VolumeEnvelope()

	if err := track.BaseFrequency().SetVal(0, be.BaseFrequency()); err != nil {
		return nil, errors.Wrapf(codec.ErrDecode, "base frequency: %v", err)
	}

	start := be.Start()
	for i, r := range be.Rows() {
		if i == 0 {
			err = firstErr(noise.SetVal(0, r.NoiseVolume), vol.SetVal(0, r.BinauralVolume), ent.SetVal(0, r.BinauralFrequency))
		} else {
			t := r.T - start
			err = firstErr(noise.AddPoint(t, r.NoiseVolume), vol.AddPoint(t, r.BinauralVolume), ent.AddPoint(t, r.BinauralFrequency))
		}
		if err != nil {
			return nil, errors.Wrapf(codec.ErrDecode, "row %d: %v", i, err)
		}
	}

	return p, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
