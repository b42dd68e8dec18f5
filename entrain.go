// SPDX-License-Identifier: EPL-2.0

package entrain

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/curve"
	"github.com/ik5/entrain/formats/hbl"
	"github.com/ik5/entrain/formats/hbx"
	"github.com/ik5/entrain/formats/hes"
	"github.com/ik5/entrain/formats/sin"
	"github.com/ik5/entrain/importer"
	"github.com/ik5/entrain/internal/fileutil"
	"github.com/ik5/entrain/legacy"
	"github.com/ik5/entrain/preset"
)

// Legacy container names accepted by SaveLegacy.
const (
	FormatHBL = "hbl"
	FormatHBS = "hbs"
	FormatHBX = "hbx"
)

// ImportLegacy reads an HBX, HBS or HBL file and projects it into a preset.
func ImportLegacy(ctx context.Context, path string) (*preset.Preset, error) {
	return importer.New().Import(ctx, path)
}

// LoadPreset reads a native .sin preset.
func LoadPreset(ctx context.Context, path string) (*preset.Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(codec.ErrIO, "%v", err)
	}
	defer f.Close()

	p, err := sin.Decoder{}.Decode(bufio.NewReader(f))
	if err != nil {
		logger.Wf(ctx, "load %v failed, err %+v", path, err)
		return nil, errors.Wrapf(err, "load %v", path)
	}

	logger.Tf(ctx, "load %v ok, title=%v, tracks=%v", path, p.Title, p.EntrainmentTrackCount())
	return p, nil
}

// SavePreset writes p as a native .sin preset.
func SavePreset(ctx context.Context, path string, p *preset.Preset) error {
	if err := writeBuffered(path, func(w io.Writer) error {
		return sin.Encoder{}.Encode(w, p)
	}); err != nil {
		return errors.Wrapf(err, "save %v", path)
	}

	logger.Tf(ctx, "save %v ok, title=%v", path, p.Title)
	return nil
}

// SaveLegacy writes be in the legacy container format, one of FormatHBL,
// FormatHBS or FormatHBX. level is the gzip level of the binary containers.
func SaveLegacy(ctx context.Context, path string, be *legacy.BinauralEnvelope, format string, level int) error {
	var write func(w io.Writer) error
	switch strings.ToLower(format) {
	case FormatHBL:
		write = func(w io.Writer) error { return hbl.Encoder{}.Encode(w, be) }
	case FormatHBS:
		write = func(w io.Writer) error { return hes.WriteContainer(w, be, level) }
	case FormatHBX:
		write = func(w io.Writer) error { return hbx.WriteContainer(w, be, level) }
	default:
		return errors.Wrapf(codec.ErrFormat, "legacy format %q", format)
	}

	if err := writeBuffered(path, write); err != nil {
		return errors.Wrapf(err, "save %v", path)
	}

	logger.Tf(ctx, "save %v ok, format=%v, points=%v", path, format, len(be.Rows()))
	return nil
}

// SaveCurves samples p at rate and writes the curves as a WAV file, one
// channel per envelope in curve.Labels order.
func SaveCurves(ctx context.Context, path string, p *preset.Preset, rate int) error {
	buf, err := curve.Sample(p, rate)
	if err != nil {
		return errors.Wrapf(err, "sample %v", p.Title)
	}

	if err := fileutil.WriteAtomic(path, func(f *os.File) error {
		return curve.WriteWAV(f, buf)
	}); err != nil {
		return errors.Wrapf(err, "save %v", path)
	}

	logger.Tf(ctx, "save %v ok, channels=%v, rate=%v", path, buf.Format.NumChannels, rate)
	return nil
}

func writeBuffered(path string, write func(w io.Writer) error) error {
	return fileutil.WriteAtomic(path, func(f *os.File) error {
		bw := bufio.NewWriter(f)
		if err := write(bw); err != nil {
			return err
		}
		return bw.Flush()
	})
}
