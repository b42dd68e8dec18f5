// SPDX-License-Identifier: EPL-2.0

package text

import (
	"bytes"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/legacy"
	"github.com/ik5/entrain/utils"
)

// FieldsPerRow is the number of comma-separated fields on a point line.
const FieldsPerRow = 7

type Encoder struct{}

func (Encoder) Encode(w io.Writer, be *legacy.BinauralEnvelope) error {
	data, err := Marshal(be)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrapf(err, "write text")
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*legacy.BinauralEnvelope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(codec.ErrIO, "read text: %v", err)
	}

	return Unmarshal(data)
}

// Marshal renders be in canonical text form.
func Marshal(be *legacy.BinauralEnvelope) ([]byte, error) {
	if !utils.IsFinite(be.BaseFrequency()) {
		return nil, errors.Wrapf(codec.ErrEncode, "base frequency %v", be.BaseFrequency())
	}

	var buf bytes.Buffer
	buf.WriteString(utils.FormatNumber(be.BaseFrequency()))
	buf.WriteByte('\n')

	for _, r := range be.Rows() {
		fields := [FieldsPerRow]float64{
			r.T,
			r.BinauralFrequency, r.BinauralFrequencyCurvature,
			r.BinauralVolume, r.BinauralVolumeCurvature,
			r.NoiseVolume, r.NoiseVolumeCurvature,
		}
		for i, f := range fields {
			if !utils.IsFinite(f) {
				return nil, errors.Wrapf(codec.ErrEncode, "point at t=%v field %d is %v", r.T, i, f)
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(utils.FormatNumber(f))
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// Unmarshal parses canonical text. It accepts any text the HES unpacker
// produces, including a trailing NUL from an odd-length pad.
func Unmarshal(data []byte) (*legacy.BinauralEnvelope, error) {
	// Errors name physical lines, so blank lines keep their numbers.
	lines := strings.Split(string(data), "\n")
	first := slices.IndexFunc(lines, func(l string) bool { return trim(l) != "" })
	if first < 0 {
		return nil, ErrEmpty
	}

	base, err := parseNumber(lines[first])
	if err != nil {
		return nil, errors.Wrapf(err, "base frequency on line %d", first+1)
	}

	be := legacy.New()
	be.SetBaseFrequency(base)

	for i := first + 1; i < len(lines); i++ {
		n := i + 1
		line := trim(lines[i])
		if line == "" {
			continue
		}

		// Empty tokens between commas are skipped, so "1,,2" is two fields.
		tokens := strings.FieldsFunc(line, func(r rune) bool { return r == ',' })
		if len(tokens) != FieldsPerRow {
			return nil, errors.Wrapf(ErrFieldCount, "line %d has %d", n, len(tokens))
		}

		var v [FieldsPerRow]float64
		for j, tok := range tokens {
			if v[j], err = parseNumber(tok); err != nil {
				return nil, errors.Wrapf(err, "line %d", n)
			}
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
			return nil, errors.Wrapf(codec.ErrDecode, "line %d: %v", n, err)
		}
	}

	return be, nil
}

// trim drops whitespace and control characters, NUL included, at both ends.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

func parseNumber(s string) (float64, error) {
	s = trim(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !utils.IsFinite(v) {
		return 0, errors.Wrapf(ErrNumber, "%q", s)
	}

	return v, nil
}
