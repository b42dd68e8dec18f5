// SPDX-License-Identifier: EPL-2.0

package importer_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"path/filepath"
	"testing"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/formats/hbl"
	"github.com/ik5/entrain/formats/hbx"
	"github.com/ik5/entrain/formats/hes"
	"github.com/ik5/entrain/importer"
	"github.com/ik5/entrain/internal/presettest"
	"github.com/ik5/entrain/legacy"
)

// container renders be in the given legacy container.
func container(t *testing.T, state importer.State, be *legacy.BinauralEnvelope) []byte {
	t.Helper()

	var buf bytes.Buffer
	switch state {
	case importer.XMLText:
		require.NoError(t, hbl.Encoder{}.Encode(&buf, be))
	case importer.ObjectBinary:
		require.NoError(t, hbx.WriteContainer(&buf, be, gzip.BestCompression))
	case importer.PackedBinary:
		require.NoError(t, hes.WriteContainer(&buf, be, gzip.BestCompression))
	default:
		t.Fatalf("no container for %v", state)
	}

	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		file   string
		header string
		want   importer.State
	}{
		{"text extension", "a.hbl", "", importer.XMLText},
		{"text extension upper case", "A.HBL", "HBS", importer.XMLText},
		{"object magic", "a.hbx", "HBX", importer.ObjectBinary},
		{"packed magic", "a.hbs", "HBS", importer.PackedBinary},
		{"magic wins over extension", "a.hbx", "HBS", importer.PackedBinary},
		{"any extension", "preset.dat", "HBS", importer.PackedBinary},
		{"no extension", "preset", "HBX", importer.ObjectBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := importer.Detect(tt.file, []byte(tt.header))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_Unrecognized(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"", "HB", "hbs", "XYZ", "<Bi"} {
		state, err := importer.Detect("a.hbs", []byte(header))
		require.Error(t, err, header)
		assert.Equal(t, importer.Unknown, state)
		assert.Equal(t, codec.ErrFormat, errors.Cause(err))
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hbl", importer.XMLText.String())
	assert.Equal(t, "hbx", importer.ObjectBinary.String())
	assert.Equal(t, "hbs", importer.PackedBinary.String())
	assert.Equal(t, "projected", importer.Projected.String())
	assert.Equal(t, "unknown", importer.State(42).String())
}

func TestLoad_EveryContainer(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		file  string
		state importer.State
	}{
		{"session.hbl", importer.XMLText},
		{"session.hbx", importer.ObjectBinary},
		{"session.hbs", importer.PackedBinary},
		{"session.bin", importer.PackedBinary},
	} {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			be := presettest.EveryCharacter(t)
			path := presettest.WriteFile(t, t.TempDir(), tt.file, container(t, tt.state, be))

			got, err := importer.New().Load(context.Background(), path)
			require.NoError(t, err)
			assert.True(t, be.Equal(got, presettest.Tolerance))
		})
	}
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	session := presettest.Session(t)
	packed := container(t, importer.PackedBinary, session)

	tests := []struct {
		name  string
		path  string
		cause error
	}{
		{"missing file", filepath.Join(dir, "nope.hbs"), codec.ErrIO},
		{"directory", dir, codec.ErrIO},
		{"empty file", presettest.WriteFile(t, dir, "empty.hbs", nil), codec.ErrFormat},
		{"text without extension", presettest.WriteFile(t, dir, "text.hbx", container(t, importer.XMLText, session)), codec.ErrFormat},
		{"truncated packed", presettest.WriteFile(t, dir, "cut.hbs", packed[:len(packed)/2]), codec.ErrDecode},
		{"magic only", presettest.WriteFile(t, dir, "magic.hbx", []byte(hbx.Magic)), codec.ErrDecode},
		{"binary as text", presettest.WriteFile(t, dir, "binary.hbl", packed), codec.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			be, err := importer.New().Load(context.Background(), tt.path)
			require.Error(t, err)
			assert.Nil(t, be)
			assert.Equal(t, tt.cause, errors.Cause(err))
		})
	}
}

func TestLoad_MissingDecoder(t *testing.T) {
	t.Parallel()

	path := presettest.WriteFile(t, t.TempDir(), "a.hbs", container(t, importer.PackedBinary, presettest.Session(t)))

	_, err := importer.NewWithRegistry(codec.NewRegistry()).Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, codec.ErrFormat, errors.Cause(err))
}

func TestImport(t *testing.T) {
	t.Parallel()

	path := presettest.WriteFile(t, t.TempDir(), "descent.hbs", container(t, importer.PackedBinary, presettest.Session(t)))

	p, err := importer.New().Import(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "descent.hbs", p.Title)
	assert.Empty(t, p.Author)
	assert.Equal(t, importer.Description, p.Description)
	assert.Equal(t, float32(1200), p.Length)
	assert.False(t, p.Loops())
	assert.Equal(t, 1, p.EntrainmentTrackCount())
	assert.Equal(t, 5, p.NoiseEnvelope().PointCount())
}
