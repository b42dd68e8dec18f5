// SPDX-License-Identifier: EPL-2.0

// Package codec defines what every legacy envelope codec looks like and the
// error taxonomy shared by the codecs, the importer and the preset model.
//
// # Interfaces
//
//	type Decoder interface {
//	    Decode(r io.Reader) (*legacy.BinauralEnvelope, error)
//	}
//
//	type Encoder interface {
//	    Encode(w io.Writer, be *legacy.BinauralEnvelope) error
//	}
//
// The formats/text, formats/hbl, formats/hes and formats/hbx packages each
// provide a Decoder and an Encoder.
//
// # Registry
//
// A Registry maps a format key to its Decoder. The importer fills one with
// the three legacy container formats:
//
//	reg := codec.NewRegistry()
//	reg.Register("hbl", hbl.Decoder{})
//	dec, ok := reg.Get("hbl")
//
// # Errors
//
// Failures are wrapped around one of the sentinels below, so callers can
// classify them with errors.Cause from github.com/ossrs/go-oryx-lib/errors:
//   - ErrIO: the file is missing or unreadable
//   - ErrFormat: the header or extension names no known format
//   - ErrDecode: the content is malformed
//   - ErrEncode: a value cannot be represented by the target format
//   - ErrUnsupportedFeature: the preset is valid but outside the ranges an
//     embedding application accepts
package codec
