// SPDX-License-Identifier: EPL-2.0

package sin

import (
	"encoding/xml"
	"io"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/envelope"
	"github.com/ik5/entrain/preset"
	"github.com/ik5/entrain/utils"
)

// Extension is the file extension of native presets.
const Extension = ".sin"

type xmlPreset struct {
	XMLName     xml.Name   `xml:"Preset"`
	Length      float32    `xml:"length,attr"`
	Loop        float32    `xml:"loop,attr"`
	Title       string     `xml:"Title"`
	Author      string     `xml:"Author"`
	Description string     `xml:"Description"`
	Noise       []xmlPoint `xml:"Noise>Point"`
	Tracks      []xmlTrack `xml:"Track"`
}

type xmlTrack struct {
	Volume               float32    `xml:"volume,attr"`
	BaseFrequency        []xmlPoint `xml:"BaseFrequency>Point"`
	EntrainmentFrequency []xmlPoint `xml:"EntrainmentFrequency>Point"`
	Volumes              []xmlPoint `xml:"Volume>Point"`
}

// xmlPoint leaves Curvature nil when the attribute is absent; such a point
// starts a linear segment.
type xmlPoint struct {
	T         float64  `xml:"t,attr"`
	Value     float64  `xml:"value,attr"`
	Curvature *float64 `xml:"curvature,attr"`
}

type Encoder struct{}

func (Encoder) Encode(w io.Writer, p *preset.Preset) error {
	doc, err := toXML(p)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrapf(err, "write header")
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrapf(err, "encode preset")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "close encoder")
	}

	_, err = io.WriteString(w, "\n")
	return err
}

func toXML(p *preset.Preset) (*xmlPreset, error) {
	if !utils.IsFinite(float64(p.Length)) || !utils.IsFinite(float64(p.Loop)) {
		return nil, errors.Wrapf(codec.ErrEncode, "length %v loop %v", p.Length, p.Loop)
	}

	doc := &xmlPreset{
		Length:      p.Length,
		Loop:        p.Loop,
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
	}

	var err error
	if doc.Noise, err = points(p.NoiseEnvelope()); err != nil {
		return nil, errors.Wrapf(err, "noise")
	}

	for i := range p.EntrainmentTrackCount() {
		t, err := p.EntrainmentTrack(i)
		if err != nil {
			return nil, err
		}

		xt := xmlTrack{Volume: t.Volume}
		if xt.BaseFrequency, err = points(t.BaseFrequency()); err != nil {
			return nil, errors.Wrapf(err, "track %d base frequency", i)
		}
		if xt.EntrainmentFrequency, err = points(t.EntrainmentFrequency()); err != nil {
			return nil, errors.Wrapf(err, "track %d entrainment frequency", i)
		}
		if xt.Volumes, err = points(t.VolumeEnvelope()); err != nil {
			return nil, errors.Wrapf(err, "track %d volume", i)
		}
		doc.Tracks = append(doc.Tracks, xt)
	}

	return doc, nil
}

func points(e *envelope.Envelope) ([]xmlPoint, error) {
	if e.PointCount() == 0 {
		return nil, errors.Wrapf(codec.ErrEncode, "envelope has no points")
	}

	out := make([]xmlPoint, 0, e.PointCount())
	for _, p := range e.Points() {
		out = append(out, xmlPoint{T: p.T, Value: p.Value, Curvature: &p.Curvature})
	}

	return out, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*preset.Preset, error) {
	var doc xmlPreset
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.Wrapf(ErrMalformed, "empty document")
		}
		return nil, errors.Wrapf(ErrMalformed, "%v", err)
	}

	if !utils.IsFinite(float64(doc.Length)) || !utils.IsFinite(float64(doc.Loop)) {
		return nil, errors.Wrapf(codec.ErrDecode, "length %v loop %v", doc.Length, doc.Loop)
	}
	if len(doc.Tracks) == 0 {
		return nil, ErrNoTracks
	}

	p := preset.New(doc.Length, doc.Loop, doc.Title, doc.Author, doc.Description)
	if err := fill(p.NoiseEnvelope(), doc.Noise); err != nil {
		return nil, errors.Wrapf(err, "noise")
	}

	for i, xt := range doc.Tracks {
		if i > 0 {
			p.AddEntrainmentTrack()
		}
		t, err := p.EntrainmentTrack(i)
		if err != nil {
			return nil, err
		}

		t.Volume = xt.Volume
		if err := fill(t.BaseFrequency(), xt.BaseFrequency); err != nil {
			return nil, errors.Wrapf(err, "track %d base frequency", i)
		}
		if err := fill(t.EntrainmentFrequency(), xt.EntrainmentFrequency); err != nil {
			return nil, errors.Wrapf(err, "track %d entrainment frequency", i)
		}
		if err := fill(t.VolumeEnvelope(), xt.Volumes); err != nil {
			return nil, errors.Wrapf(err, "track %d volume", i)
		}
	}

	return p, nil
}

// fill replaces the points of e with pts.
func fill(e *envelope.Envelope, pts []xmlPoint) error {
	if len(pts) == 0 {
		return ErrEmptyEnvelope
	}

	e.ClearPoints()
	for i, pt := range pts {
		c := envelope.Linear
		if pt.Curvature != nil {
			c = *pt.Curvature
		}
		if err := e.SetPoint(pt.T, pt.Value, c); err != nil {
			return errors.Wrapf(codec.ErrDecode, "point %d: %v", i, err)
		}
	}

	return nil
}
