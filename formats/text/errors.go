// SPDX-License-Identifier: EPL-2.0

package text

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
)

var (
	// ErrEmpty indicates there is no base frequency line.
	ErrEmpty = errors.Wrapf(codec.ErrDecode, "no base frequency line")

	// ErrFieldCount indicates a point line without exactly seven fields.
	ErrFieldCount = errors.Wrapf(codec.ErrDecode, "point line needs %d fields", FieldsPerRow)

	// ErrNumber indicates a field that is not a finite number.
	ErrNumber = errors.Wrapf(codec.ErrDecode, "field is not a finite number")
)
