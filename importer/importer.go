// SPDX-License-Identifier: EPL-2.0

package importer

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/formats/hbl"
	"github.com/ik5/entrain/formats/hbx"
	"github.com/ik5/entrain/formats/hes"
	"github.com/ik5/entrain/legacy"
	"github.com/ik5/entrain/preset"
)

// Description is the description of every imported preset.
const Description = "Imported from HBX Binaural Player"

// Importer reads legacy files with the decoders of its registry, keyed by
// State.String of the container.
type Importer struct {
	registry *codec.Registry
}

// New returns an importer for the three legacy containers.
func New() *Importer {
	r := codec.NewRegistry()
	r.Register(XMLText.String(), hbl.Decoder{})
	r.Register(ObjectBinary.String(), hbx.Decoder{})
	r.Register(PackedBinary.String(), hes.Decoder{})

	return NewWithRegistry(r)
}

// NewWithRegistry returns an importer using the decoders in r.
func NewWithRegistry(r *codec.Registry) *Importer {
	return &Importer{registry: r}
}

// Load decodes the legacy file at path. Errors have codec.ErrIO,
// codec.ErrFormat or codec.ErrDecode as their cause.
func (im *Importer) Load(ctx context.Context, path string) (*legacy.BinauralEnvelope, error) {
	be, state, err := im.load(path)
	if err != nil {
		logger.Wf(ctx, "import %v failed, state=%v, err %+v", path, state, err)
		return nil, err
	}

	logger.Tf(ctx, "import %v ok, format=%v, points=%v, length=%vs", path, state, len(be.Rows()), be.Length())
	return be, nil
}

func (im *Importer) load(path string) (*legacy.BinauralEnvelope, State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Unknown, errors.Wrapf(codec.ErrIO, "%v", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	// Only the magic is consumed; text containers are read from the start.
	var header []byte
	if !strings.EqualFold(filepath.Ext(path), TextExtension) {
		header = make([]byte, HeaderSize)
		n, err := io.ReadFull(r, header)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, Unknown, errors.Wrapf(codec.ErrIO, "read header: %v", err)
		}
		header = header[:n]
	}

	state, err := Detect(path, header)
	if err != nil {
		return nil, state, err
	}

	dec, ok := im.registry.Get(state.String())
	if !ok {
		return nil, state, errors.Wrapf(codec.ErrFormat, "no decoder for %v", state)
	}

	be, err := dec.Decode(r)
	if err != nil {
		switch errors.Cause(err) {
		case codec.ErrIO, codec.ErrFormat, codec.ErrDecode:
			return nil, state, errors.Wrapf(err, "%v", filepath.Base(path))
		}
		return nil, state, errors.Wrapf(codec.ErrDecode, "%v: %v", filepath.Base(path), err)
	}

	return be, Decoded, nil
}

// Import loads the legacy file at path and projects it into a preset titled
// with the file name.
func (im *Importer) Import(ctx context.Context, path string) (*preset.Preset, error) {
	be, err := im.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	p, err := Project(be, filepath.Base(path))
	if err != nil {
		logger.Wf(ctx, "project %v failed, err %+v", path, err)
		return nil, err
	}

	logger.Tf(ctx, "import %v %v, tracks=%v, length=%vs", path, Projected, p.EntrainmentTrackCount(), p.Length)
	return p, nil
}
