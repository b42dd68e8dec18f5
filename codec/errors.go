// SPDX-License-Identifier: EPL-2.0

package codec

import "github.com/ossrs/go-oryx-lib/errors"

var (
	ErrIO                 = errors.New("preset file unreadable")
	ErrFormat             = errors.New("unrecognized preset format")
	ErrDecode             = errors.New("preset not valid")
	ErrEncode             = errors.New("preset not encodable")
	ErrUnsupportedFeature = errors.New("preset uses unsupported features")
)
