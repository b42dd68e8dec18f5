// SPDX-License-Identifier: EPL-2.0

package curve

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/envelope"
	"github.com/ik5/entrain/preset"
)

// Labels names the channels Sample produces for p, in order.
func Labels(p *preset.Preset) []string {
	labels := []string{"noise"}
	for i := range p.EntrainmentTrackCount() {
		labels = append(labels,
			fmt.Sprintf("track%d.base", i),
			fmt.Sprintf("track%d.entrainment", i),
			fmt.Sprintf("track%d.volume", i),
		)
	}

	return labels
}

type channel struct {
	env   *envelope.Envelope
	scale float64
}

// Sample evaluates every envelope of p from 0 to p.Length inclusive, rate
// times per second.
func Sample(p *preset.Preset, rate int) (*audio.FloatBuffer, error) {
	if rate <= 0 {
		return nil, errors.Wrapf(ErrRate, "rate %v", rate)
	}
	length := float64(p.Length)
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return nil, errors.Wrapf(ErrLength, "length %v", p.Length)
	}

	chans := []channel{{env: p.NoiseEnvelope(), scale: 1}}
	for i := range p.EntrainmentTrackCount() {
		t, err := p.EntrainmentTrack(i)
		if err != nil {
			return nil, err
		}
		chans = append(chans,
			channel{env: t.BaseFrequency(), scale: 1},
			channel{env: t.EntrainmentFrequency(), scale: 1},
			channel{env: t.VolumeEnvelope(), scale: float64(t.Volume)},
		)
	}

	frames := int(math.Floor(length*float64(rate))) + 1
	data := make([]float64, frames*len(chans))
	for f := range frames {
		at := float64(f) / float64(rate)
		for c, ch := range chans {
			data[f*len(chans)+c] = ch.env.ValueAt(at) * ch.scale
		}
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: len(chans), SampleRate: rate},
		Data:   data,
	}, nil
}
