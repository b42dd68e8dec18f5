// SPDX-License-Identifier: EPL-2.0

// Package curve samples the envelopes of a preset at a fixed control rate.
//
// Sample returns one channel per envelope, interleaved in a go-audio
// FloatBuffer: the noise volume first, then base frequency, entrainment
// frequency and volume for each track in order. Volume channels are scaled
// by the track volume.
//
// WriteWAV stores such a buffer as a 16-bit WAV file with every channel
// normalized to its own peak, which makes the shape of each curve easy to
// inspect in any audio editor:
//
//	buf, err := curve.Sample(p, 100)
//	if err != nil {
//		return err
//	}
//	f, err := os.Create("curves.wav")
//	...
//	err = curve.WriteWAV(f, buf)
//
// Use Labels to name the channels.
package curve
