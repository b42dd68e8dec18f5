// SPDX-License-Identifier: EPL-2.0

package hes

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
)

var (
	// ErrCorruptStream indicates the gzip stream could not be read.
	ErrCorruptStream = errors.Wrapf(codec.ErrDecode, "corrupt HES stream")
)
