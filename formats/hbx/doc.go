// SPDX-License-Identifier: EPL-2.0

// Package hbx reads and writes the object binary container of the HBX
// player family.
//
// The original container held a runtime-specific object dump. This package
// replaces it with an explicit versioned record, gzip compressed behind the
// three byte magic "HBX". All integers and floats are big-endian:
//
//	uint16   version (currently 1)
//	float64  base frequency
//	3 x {
//	    uint32   point count
//	    count x { float64 t, float64 value, float64 curvature }
//	}
//
// The three envelopes are binaural frequency, binaural volume and noise
// volume, in that order. Files written by the original player cannot be read;
// they fail with codec.ErrDecode.
package hbx
