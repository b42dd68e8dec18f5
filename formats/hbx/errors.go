// SPDX-License-Identifier: EPL-2.0

package hbx

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
)

var (
	// ErrUnsupportedVersion indicates a record version this package does not know.
	ErrUnsupportedVersion = errors.Wrapf(codec.ErrDecode, "unsupported HBX record version")
	// ErrTruncated indicates the record ended early or the stream was corrupt.
	ErrTruncated = errors.Wrapf(codec.ErrDecode, "truncated HBX record")
	// ErrTrailingData indicates bytes after the last envelope.
	ErrTrailingData = errors.Wrapf(codec.ErrDecode, "trailing data after HBX record")
	// ErrTooManyPoints indicates a point count above MaxPoints.
	ErrTooManyPoints = errors.Wrapf(codec.ErrDecode, "HBX envelope too large")
)
