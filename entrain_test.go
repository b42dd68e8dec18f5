// SPDX-License-Identifier: EPL-2.0

package entrain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/curve"
	"github.com/ik5/entrain/internal/presettest"
	"github.com/ik5/entrain/preset"
)

func TestSaveLoadPreset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "default.sin")

	p := preset.NewDefault()
	p.Title = "Default"
	require.NoError(t, SavePreset(ctx, path, p))

	got, err := LoadPreset(ctx, path)
	require.NoError(t, err)
	assert.True(t, p.Equal(got, 0))
}

func TestLoadPreset_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	_, err := LoadPreset(ctx, filepath.Join(dir, "missing.sin"))
	assert.Equal(t, codec.ErrIO, errors.Cause(err))

	path := presettest.WriteFile(t, dir, "bad.sin", []byte("<Preset"))
	_, err = LoadPreset(ctx, path)
	assert.Equal(t, codec.ErrDecode, errors.Cause(err))
}

func TestSaveLegacy_ImportLegacy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	be := presettest.Session(t)

	for _, format := range []string{FormatHBL, FormatHBS, FormatHBX, "HBS"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "session."+format)
			require.NoError(t, SaveLegacy(ctx, path, be, format, 0))

			p, err := ImportLegacy(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, "session."+format, p.Title)
			assert.Equal(t, float32(be.Length()), p.Length)
			assert.Equal(t, len(be.Rows()), p.NoiseEnvelope().PointCount())
		})
	}
}

func TestSaveLegacy_UnknownFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.mp3")
	err := SaveLegacy(context.Background(), path, presettest.Session(t), "mp3", 0)
	assert.Equal(t, codec.ErrFormat, errors.Cause(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSavePreset_FailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "keep.sin")
	require.NoError(t, SavePreset(ctx, path, preset.NewDefault()))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	broken := preset.NewDefault()
	broken.NoiseEnvelope().ClearPoints()
	err = SavePreset(ctx, path, broken)
	assert.Equal(t, codec.ErrEncode, errors.Cause(err))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSaveCurves(t *testing.T) {
	t.Parallel()

	p := preset.NewDefault()
	path := filepath.Join(t.TempDir(), "curves.wav")
	require.NoError(t, SaveCurves(context.Background(), path, p, 10))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	pcm, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, len(curve.Labels(p)), int(dec.NumChans))
	assert.Len(t, pcm.Data, (300*10+1)*4)
}
