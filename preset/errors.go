// SPDX-License-Identifier: EPL-2.0

package preset

import "github.com/ossrs/go-oryx-lib/errors"

var (
	// ErrTrackIndex indicates a track index outside [0, EntrainmentTrackCount).
	ErrTrackIndex = errors.New("entrainment track index out of range")
	// ErrLastTrack indicates an attempt to remove the only entrainment track.
	ErrLastTrack = errors.New("a preset needs at least one entrainment track")
)
