// SPDX-License-Identifier: EPL-2.0

// Package preset is the multi-track entrainment preset consumed by renderers
// and editors. A preset has one noise volume envelope and at least one
// entrainment track; every envelope it creates starts with a point at t=0, so
// index 0 can always be edited with SetVal.
package preset

import (
	"github.com/ossrs/go-oryx-lib/errors"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ik5/entrain/envelope"
)

// NoLoop is the loop point of a preset that plays once.
const NoLoop float32 = -1

// Values a preset made by NewDefault starts with.
const (
	DefaultLength               = 300
	DefaultNoiseVolume          = 0.35
	DefaultBaseFrequency        = 440.0
	DefaultEntrainmentFrequency = 10.0
	DefaultTrackVolume          = 1
)

// EntrainmentTrack is one carrier with its beat frequency and volume. The
// envelope accessors return the live envelopes, not copies.
type EntrainmentTrack struct {
	// Volume scales the whole track, in [0,1].
	Volume float32

	baseFrequency        *envelope.Envelope
	entrainmentFrequency *envelope.Envelope
	volume               *envelope.Envelope
}

// NewTrack returns a track whose three envelopes are flat at the given values.
func NewTrack(baseFrequency, entrainmentFrequency, volume float64, trackVolume float32) *EntrainmentTrack {
	return &EntrainmentTrack{
		Volume:               trackVolume,
		baseFrequency:        envelope.NewFlat(baseFrequency),
		entrainmentFrequency: envelope.NewFlat(entrainmentFrequency),
		volume:               envelope.NewFlat(volume),
	}
}

func (t *EntrainmentTrack) BaseFrequency() *envelope.Envelope        { return t.baseFrequency }
func (t *EntrainmentTrack) EntrainmentFrequency() *envelope.Envelope { return t.entrainmentFrequency }
func (t *EntrainmentTrack) VolumeEnvelope() *envelope.Envelope       { return t.volume }

func (t *EntrainmentTrack) Clone() *EntrainmentTrack {
	return &EntrainmentTrack{
		Volume:               t.Volume,
		baseFrequency:        t.baseFrequency.Clone(),
		entrainmentFrequency: t.entrainmentFrequency.Clone(),
		volume:               t.volume.Clone(),
	}
}

func (t *EntrainmentTrack) Equal(o *EntrainmentTrack, tol float64) bool {
	return o != nil &&
		scalar.EqualWithinAbsOrRel(float64(t.Volume), float64(o.Volume), tol, tol) &&
		t.baseFrequency.Equal(o.baseFrequency, tol) &&
		t.entrainmentFrequency.Equal(o.entrainmentFrequency, tol) &&
		t.volume.Equal(o.volume, tol)
}

// Preset is an entrainment session. Length and Loop are in seconds; Loop is
// NoLoop or the time playback jumps back to after Length.
type Preset struct {
	Title       string
	Author      string
	Description string
	Length      float32
	Loop        float32

	noise  *envelope.Envelope
	tracks []*EntrainmentTrack
}

// New returns a preset with silent noise and one track with all envelopes
// flat at zero and track volume 1.
func New(length, loop float32, title, author, description string) *Preset {
	return &Preset{
		Title:       title,
		Author:      author,
		Description: description,
		Length:      length,
		Loop:        loop,
		noise:       envelope.NewFlat(0),
		tracks:      []*EntrainmentTrack{NewTrack(0, 0, 0, 1)},
	}
}

// NewDefault returns the preset an editor starts from: five minutes, no loop,
// soft noise and one 440 Hz carrier beating at 10 Hz.
func NewDefault() *Preset {
	p := New(DefaultLength, NoLoop, "", "", "")
	p.noise = envelope.NewFlat(DefaultNoiseVolume)
	p.tracks[0] = NewTrack(DefaultBaseFrequency, DefaultEntrainmentFrequency, 1, DefaultTrackVolume)

	return p
}

// NoiseEnvelope returns the live noise volume envelope.
func (p *Preset) NoiseEnvelope() *envelope.Envelope { return p.noise }

func (p *Preset) EntrainmentTrackCount() int { return len(p.tracks) }

func (p *Preset) EntrainmentTrack(i int) (*EntrainmentTrack, error) {
	if i < 0 || i >= len(p.tracks) {
		return nil, errors.Wrapf(ErrTrackIndex, "track %d of %d", i, len(p.tracks))
	}

	return p.tracks[i], nil
}

// AddEntrainmentTrack appends a track with the default carrier and beat and
// returns it.
func (p *Preset) AddEntrainmentTrack() *EntrainmentTrack {
	t := NewTrack(DefaultBaseFrequency, DefaultEntrainmentFrequency, 1, DefaultTrackVolume)
	p.tracks = append(p.tracks, t)

	return t
}

func (p *Preset) RemoveEntrainmentTrack(i int) error {
	if i < 0 || i >= len(p.tracks) {
		return errors.Wrapf(ErrTrackIndex, "track %d of %d", i, len(p.tracks))
	}
	if len(p.tracks) == 1 {
		return ErrLastTrack
	}

	p.tracks = append(p.tracks[:i], p.tracks[i+1:]...)
	return nil
}

func (p *Preset) Loops() bool { return p.Loop >= 0 }

// Clone returns a deep copy sharing no envelope storage with p.
func (p *Preset) Clone() *Preset {
	c := *p
	c.noise = p.noise.Clone()
	c.tracks = make([]*EntrainmentTrack, len(p.tracks))
	for i, t := range p.tracks {
		c.tracks[i] = t.Clone()
	}

	return &c
}

// Equal reports whether o has the same metadata and, within tol, the same
// timing and envelopes.
func (p *Preset) Equal(o *Preset, tol float64) bool {
	if o == nil ||
		p.Title != o.Title || p.Author != o.Author || p.Description != o.Description ||
		!scalar.EqualWithinAbsOrRel(float64(p.Length), float64(o.Length), tol, tol) ||
		!scalar.EqualWithinAbsOrRel(float64(p.Loop), float64(o.Loop), tol, tol) ||
		!p.noise.Equal(o.noise, tol) ||
		len(p.tracks) != len(o.tracks) {
		return false
	}

	for i, t := range p.tracks {
		if !t.Equal(o.tracks[i], tol) {
			return false
		}
	}

	return true
}
