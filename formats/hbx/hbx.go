// SPDX-License-Identifier: EPL-2.0

package hbx

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"io"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/envelope"
	"github.com/ik5/entrain/legacy"
	"github.com/ik5/entrain/utils"
)

const (
	// Magic opens every .hbx file.
	Magic = "HBX"
	// Version is the record layout written by Encoder.
	Version uint16 = 1
	// MaxPoints caps the point count of one envelope so a corrupt count
	// cannot force a huge allocation.
	MaxPoints = 1 << 20
)

var order = binary.BigEndian

// Encoder writes the gzip compressed record. Level is a compress/gzip level,
// used as given: the zero value is gzip.NoCompression.
type Encoder struct {
	Level int
}

func (e Encoder) Encode(w io.Writer, be *legacy.BinauralEnvelope) error {
	if !utils.IsFinite(be.BaseFrequency()) {
		return errors.Wrapf(codec.ErrEncode, "base frequency %v", be.BaseFrequency())
	}

	zw, err := gzip.NewWriterLevel(w, e.Level)
	if err != nil {
		return errors.Wrapf(codec.ErrEncode, "gzip level %v: %v", e.Level, err)
	}

	bw := bufio.NewWriter(zw)
	if err := writeRecord(bw, be); err != nil {
		_ = zw.Close()
		return errors.Wrapf(err, "write hbx")
	}
	if err := bw.Flush(); err != nil {
		_ = zw.Close()
		return errors.Wrapf(err, "flush hbx")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrapf(err, "close hbx")
	}

	return nil
}

func writeRecord(w io.Writer, be *legacy.BinauralEnvelope) error {
	if err := binary.Write(w, order, Version); err != nil {
		return err
	}
	if err := binary.Write(w, order, be.BaseFrequency()); err != nil {
		return err
	}

	for _, env := range []*envelope.Envelope{be.BinauralFrequency(), be.BinauralVolume(), be.NoiseVolume()} {
		points := env.Points()
		if err := binary.Write(w, order, uint32(len(points))); err != nil {
			return err
		}
		for _, p := range points {
			if err := binary.Write(w, order, [3]float64{p.T, p.Value, p.Curvature}); err != nil {
				return err
			}
		}
	}

	return nil
}

// Decoder reads the gzip compressed record, without the magic header.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*legacy.BinauralEnvelope, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrapf(ErrTruncated, "%v", err)
	}
	defer zr.Close()

	br := bufio.NewReader(zr)

	var version uint16
	if err := binary.Read(br, order, &version); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "version: %v", err)
	}
	if version != Version {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}

	var base float64
	if err := binary.Read(br, order, &base); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "base frequency: %v", err)
	}
	if !utils.IsFinite(base) {
		return nil, errors.Wrapf(codec.ErrDecode, "base frequency %v", base)
	}

	var envs [3]*envelope.Envelope
	for i := range envs {
		if envs[i], err = readEnvelope(br); err != nil {
			return nil, errors.Wrapf(err, "envelope %d", i)
		}
	}

	if _, err := br.ReadByte(); err != io.EOF {
		if err != nil {
			return nil, errors.Wrapf(ErrTruncated, "%v", err)
		}
		return nil, ErrTrailingData
	}

	return legacy.FromEnvelopes(base, envs[0], envs[1], envs[2]), nil
}

func readEnvelope(r io.Reader) (*envelope.Envelope, error) {
	var count uint32
	if err := binary.Read(r, order, &count); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "point count: %v", err)
	}
	if count > MaxPoints {
		return nil, errors.Wrapf(ErrTooManyPoints, "%d points", count)
	}

	env := &envelope.Envelope{}
	for i := range count {
		var p [3]float64
		if err := binary.Read(r, order, &p); err != nil {
			return nil, errors.Wrapf(ErrTruncated, "point %d: %v", i, err)
		}
		if err := env.SetPoint(p[0], p[1], p[2]); err != nil {
			return nil, errors.Wrapf(codec.ErrDecode, "point %d: %v", i, err)
		}
	}

	return env, nil
}

// WriteContainer writes the full .hbx file: magic header then payload.
func WriteContainer(w io.Writer, be *legacy.BinauralEnvelope, level int) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return errors.Wrapf(err, "write magic")
	}

	return Encoder{Level: level}.Encode(w, be)
}
