// SPDX-License-Identifier: EPL-2.0

package envelope

import "github.com/ossrs/go-oryx-lib/errors"

var (
	// ErrIndexOutOfRange is returned by index based accessors.
	ErrIndexOutOfRange = errors.New("point index out of range")

	// ErrNegativeTime is returned when a point is placed before t=0.
	ErrNegativeTime = errors.New("point time must not be negative")

	// ErrNotFinite is returned for NaN or infinite times, values or curvatures.
	ErrNotFinite = errors.New("point fields must be finite")
)
