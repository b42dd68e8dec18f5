// SPDX-License-Identifier: EPL-2.0

package hbl

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
)

var (
	// ErrNoRoot indicates the document has no BinauralEnvelope element.
	ErrNoRoot = errors.Wrapf(codec.ErrDecode, "no %v element", RootElement)

	// ErrMissingAttribute indicates a required attribute is absent.
	ErrMissingAttribute = errors.Wrapf(codec.ErrDecode, "missing attribute")

	// ErrBadAttribute indicates an attribute that is not a finite number.
	ErrBadAttribute = errors.Wrapf(codec.ErrDecode, "attribute is not a finite number")

	// ErrMalformedXML indicates the document is not well formed.
	ErrMalformedXML = errors.Wrapf(codec.ErrDecode, "malformed XML")
)
