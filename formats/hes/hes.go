// SPDX-License-Identifier: EPL-2.0

package hes

import (
	"compress/gzip"
	"io"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/formats/text"
	"github.com/ik5/entrain/legacy"
)

// Magic opens every .hbs file.
const Magic = "HBS"

// Encoder writes the gzip stream. Level is a compress/gzip level, used as
// given: the zero value is gzip.NoCompression.
type Encoder struct {
	Level int
}

func (e Encoder) Encode(w io.Writer, be *legacy.BinauralEnvelope) error {
	data, err := text.Marshal(be)
	if err != nil {
		return err
	}

	zw, err := gzip.NewWriterLevel(w, e.Level)
	if err != nil {
		return errors.Wrapf(codec.ErrEncode, "gzip level %v: %v", e.Level, err)
	}
	if _, err := zw.Write(Pack(data)); err != nil {
		_ = zw.Close()
		return errors.Wrapf(err, "write hes")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrapf(err, "close hes")
	}

	return nil
}

// Decoder reads the gzip stream, without the magic header.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*legacy.BinauralEnvelope, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptStream, "%v", err)
	}
	defer zr.Close()

	packed, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptStream, "%v", err)
	}

	return text.Unmarshal(Unpack(packed))
}

// WriteContainer writes the full .hbs file: magic header then payload.
func WriteContainer(w io.Writer, be *legacy.BinauralEnvelope, level int) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return errors.Wrapf(err, "write magic")
	}

	return Encoder{Level: level}.Encode(w, be)
}
