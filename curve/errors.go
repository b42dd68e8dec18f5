// SPDX-License-Identifier: EPL-2.0

package curve

import "github.com/ossrs/go-oryx-lib/errors"

var (
	// ErrRate indicates a control rate that is not positive.
	ErrRate = errors.New("control rate must be positive")
	// ErrLength indicates a preset length that cannot be sampled.
	ErrLength = errors.New("preset length must be finite and not negative")
	// ErrFormat indicates a buffer without a usable format.
	ErrFormat = errors.New("buffer has no format")
)
