// SPDX-License-Identifier: EPL-2.0

package curve

import (
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/entrain/utils"
)

const (
	bitDepth      = 16
	pcmFormatCode = 1
)

// WriteWAV writes buf as 16-bit PCM with each channel divided by its peak
// absolute value. Silent channels stay at zero.
func WriteWAV(w io.WriteSeeker, buf *audio.FloatBuffer) error {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return ErrFormat
	}
	chans := buf.Format.NumChannels

	peaks := Peaks(buf)
	out := &audio.IntBuffer{
		Format:         buf.Format,
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: bitDepth,
	}
	for i, v := range buf.Data {
		if p := peaks[i%chans]; p > 0 {
			out.Data[i] = int(utils.Float64ToInt16(v / p))
		}
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, bitDepth, chans, pcmFormatCode)
	if err := enc.Write(out); err != nil {
		_ = enc.Close()
		return errors.Wrapf(err, "write wav")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "close wav")
	}

	return nil
}

// Peaks returns the largest absolute value of each channel of buf.
func Peaks(buf *audio.FloatBuffer) []float64 {
	chans := buf.Format.NumChannels
	frames := len(buf.Data) / chans

	peaks := make([]float64, chans)
	column := make([]float64, frames)
	for c := range chans {
		for f := range frames {
			column[f] = buf.Data[f*chans+c]
		}
		peaks[c] = floats.Norm(column, math.Inf(1))
	}

	return peaks
}
