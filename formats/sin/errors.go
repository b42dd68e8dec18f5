// SPDX-License-Identifier: EPL-2.0

package sin

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
)

var (
	// ErrMalformed indicates the document is not a well formed preset.
	ErrMalformed = errors.Wrapf(codec.ErrDecode, "malformed preset XML")
	// ErrNoTracks indicates a preset without entrainment tracks.
	ErrNoTracks = errors.Wrapf(codec.ErrDecode, "preset has no entrainment track")
	// ErrEmptyEnvelope indicates an envelope without points.
	ErrEmptyEnvelope = errors.Wrapf(codec.ErrDecode, "envelope has no points")
)
