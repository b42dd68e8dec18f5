// SPDX-License-Identifier: EPL-2.0

package hbl

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/legacy"
	"github.com/ik5/entrain/utils"
)

// Element and attribute names of the document.
const (
	RootElement  = "BinauralEnvelope"
	PointElement = "Point"

	AttrBaseFrequency              = "baseFrequency"
	AttrT                          = "t"
	AttrBinauralFrequency          = "binauralFrequency"
	AttrBinauralFrequencyCurvature = "binauralFrequencyInterpolationF"
	AttrBinauralVolume             = "binauralVolume"
	AttrBinauralVolumeCurvature    = "binauralVolumeInterpolationF"
	AttrNoiseVolume                = "noiseVolume"
	AttrNoiseVolumeCurvature       = "noiseVolumeInterpolationF"
)

type xmlEnvelope struct {
	XMLName       xml.Name   `xml:"BinauralEnvelope"`
	BaseFrequency string     `xml:"baseFrequency,attr"`
	Points        []xmlPoint `xml:"Point"`
}

type xmlPoint struct {
	T                          string `xml:"t,attr"`
	BinauralFrequency          string `xml:"binauralFrequency,attr"`
	BinauralFrequencyCurvature string `xml:"binauralFrequencyInterpolationF,attr"`
	BinauralVolume             string `xml:"binauralVolume,attr"`
	BinauralVolumeCurvature    string `xml:"binauralVolumeInterpolationF,attr"`
	NoiseVolume                string `xml:"noiseVolume,attr"`
	NoiseVolumeCurvature       string `xml:"noiseVolumeInterpolationF,attr"`
}

type Encoder struct{}

func (Encoder) Encode(w io.Writer, be *legacy.BinauralEnvelope) error {
	if !utils.IsFinite(be.BaseFrequency()) {
		return errors.Wrapf(codec.ErrEncode, "base frequency %v", be.BaseFrequency())
	}
	doc := xmlEnvelope{BaseFrequency: utils.FormatNumber(be.BaseFrequency())}

	for _, r := range be.Rows() {
		fields := []float64{
			r.T,
			r.BinauralFrequency, r.BinauralFrequencyCurvature,
			r.BinauralVolume, r.BinauralVolumeCurvature,
			r.NoiseVolume, r.NoiseVolumeCurvature,
		}
		for _, f := range fields {
			if !utils.IsFinite(f) {
				return errors.Wrapf(codec.ErrEncode, "point at t=%v has %v", r.T, f)
			}
		}

		doc.Points = append(doc.Points, xmlPoint{
			T:                          utils.FormatNumber(r.T),
			BinauralFrequency:          utils.FormatNumber(r.BinauralFrequency),
			BinauralFrequencyCurvature: utils.FormatNumber(r.BinauralFrequencyCurvature),
			BinauralVolume:             utils.FormatNumber(r.BinauralVolume),
			BinauralVolumeCurvature:    utils.FormatNumber(r.BinauralVolumeCurvature),
			NoiseVolume:                utils.FormatNumber(r.NoiseVolume),
			NoiseVolumeCurvature:       utils.FormatNumber(r.NoiseVolumeCurvature),
		})
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrapf(err, "encode xml")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrapf(err, "encode xml")
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*legacy.BinauralEnvelope, error) {
	d := xml.NewDecoder(r)

	root, err := findRoot(d)
	if err != nil {
		return nil, err
	}

	base, err := numberAttr(root.Attr, AttrBaseFrequency)
	if err != nil {
		return nil, errors.Wrapf(err, "%v", RootElement)
	}

	be := legacy.New()
	be.SetBaseFrequency(base)

	for done := false; !done; {
		tok, err := d.Token()
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedXML, "%v", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if strings.EqualFold(el.Name.Local, PointElement) {
				if err := addPoint(be, el.Attr); err != nil {
					return nil, err
				}
			}
			// Nothing below a direct child is read.
			if err := d.Skip(); err != nil {
				return nil, errors.Wrapf(ErrMalformedXML, "%v", err)
			}
		case xml.EndElement:
			done = true
		}
	}

	// The rest of the document is only checked for well-formedness.
	for {
		if _, err := d.Token(); err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(ErrMalformedXML, "%v", err)
		}
	}

	return be, nil
}

func findRoot(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return xml.StartElement{}, ErrNoRoot
		}
		if err != nil {
			return xml.StartElement{}, errors.Wrapf(ErrMalformedXML, "%v", err)
		}

		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == RootElement {
			return se, nil
		}
	}
}

func addPoint(be *legacy.BinauralEnvelope, attrs []xml.Attr) error {
	names := [...]string{
		AttrT,
		AttrBinauralFrequency, AttrBinauralFrequencyCurvature,
		AttrBinauralVolume, AttrBinauralVolumeCurvature,
		AttrNoiseVolume, AttrNoiseVolumeCurvature,
	}

	var v [len(names)]float64
	for i, name := range names {
		f, err := numberAttr(attrs, name)
		if err != nil {
			return errors.Wrapf(err, "%v", PointElement)
		}
		v[i] = f
	}

	if err := be.SetPoint(legacy.Row{
		T:                          v[0],
		BinauralFrequency:          v[1],
		BinauralFrequencyCurvature: v[2],
		BinauralVolume:             v[3],
		BinauralVolumeCurvature:    v[4],
		NoiseVolume:                v[5],
		NoiseVolumeCurvature:       v[6],
	}); err != nil {
		return errors.Wrapf(codec.ErrDecode, "%v: %v", PointElement, err)
	}

	return nil
}

func numberAttr(attrs []xml.Attr, name string) (float64, error) {
	for _, a := range attrs {
		if a.Name.Local != name {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
		if err != nil || !utils.IsFinite(v) {
			return 0, errors.Wrapf(ErrBadAttribute, "%v=%q", name, a.Value)
		}
		return v, nil
	}

	return 0, errors.Wrapf(ErrMissingAttribute, "%v", name)
}
