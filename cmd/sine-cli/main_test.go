// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/entrain"
	"github.com/ik5/entrain/internal/presettest"
	"github.com/ik5/entrain/preset"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := filepath.Join(t.TempDir(), "none.env")
	code := run(context.Background(), append([]string{"-env", env}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestToHMS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00:00", toHMS(0))
	assert.Equal(t, "00:05:00", toHMS(300))
	assert.Equal(t, "01:01:01", toHMS(3661.9))
	assert.Equal(t, "10:00:00", toHMS(36000))
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dir/a.sin", outputPath("", "dir/a.hbs", ".sin"))
	assert.Equal(t, "x.hbx", outputPath("x.hbx", "dir/a.sin", ".hbx"))
	assert.Equal(t, "dir/a.converted.sin", outputPath("", "dir/a.sin", ".sin"))
	assert.Equal(t, "dir/a.converted.hbs", outputPath("", "dir/a.HBS", ".hbs"))
}

func TestRun_DefaultOutputKeepsSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	legacyPath := filepath.Join(dir, "session.hbs")
	require.NoError(t, entrain.SaveLegacy(ctx, legacyPath, presettest.Session(t), entrain.FormatHBS, 0))
	before, err := os.ReadFile(legacyPath)
	require.NoError(t, err)

	code, stdout, _ := runCLI(t, "-export-legacy", "hbs", legacyPath)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Exported "+filepath.Join(dir, "session.converted.hbs"))

	after, err := os.ReadFile(legacyPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	native := filepath.Join(dir, "p.sin")
	require.NoError(t, entrain.SavePreset(ctx, native, preset.NewDefault()))
	code, _, _ = runCLI(t, "-import", native)
	require.Equal(t, exitOK, code)
	require.FileExists(t, filepath.Join(dir, "p.converted.sin"))
}

func TestRun_Syntax(t *testing.T) {
	t.Parallel()

	code, _, _ := runCLI(t)
	assert.Equal(t, exitSyntax, code)

	code, _, _ = runCLI(t, "a.sin", "b.sin")
	assert.Equal(t, exitSyntax, code)

	code, _, stderr := runCLI(t, "-export-legacy", "mp3", "a.sin")
	assert.Equal(t, exitSyntax, code)
	assert.Contains(t, stderr, "unknown legacy format")
}

func TestRun_NotFound(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, filepath.Join(t.TempDir(), "missing.sin"))
	assert.Equal(t, exitNotFound, code)
	assert.Contains(t, stderr, "File not found")
}

func TestRun_InfoAndValidate(t *testing.T) {
	t.Parallel()

	p := preset.NewDefault()
	p.Title = "Calm"
	p.Loop = 60
	path := filepath.Join(t.TempDir(), "calm.sin")
	require.NoError(t, entrain.SavePreset(context.Background(), path, p))

	code, stdout, _ := runCLI(t, "-validate", path)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Title:\tCalm\n")
	assert.Contains(t, stdout, "Length:\t00:05:00, loops after 00:01:00\n")
	assert.Contains(t, stdout, "Preset valid")
}

func TestRun_ValidateRejects(t *testing.T) {
	t.Parallel()

	p := preset.NewDefault()
	p.Length = 5
	path := filepath.Join(t.TempDir(), "short.sin")
	require.NoError(t, entrain.SavePreset(context.Background(), path, p))

	code, _, stderr := runCLI(t, "-validate", path)
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, stderr, "Preset not valid")
}

func TestRun_Garbage(t *testing.T) {
	t.Parallel()

	path := presettest.WriteFile(t, t.TempDir(), "junk.hbs", []byte("junk"))
	code, _, _ := runCLI(t, path)
	assert.Equal(t, exitInvalid, code)
}

func TestRun_ImportExportCurves(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "session.hbx")
	require.NoError(t, entrain.SaveLegacy(context.Background(), legacyPath, presettest.Session(t), entrain.FormatHBX, 0))

	code, stdout, _ := runCLI(t, "-import", legacyPath)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Title:\tsession.hbx\n")
	assert.Contains(t, stdout, "Length:\t00:20:00\n")

	native := filepath.Join(dir, "session.sin")
	require.FileExists(t, native)

	back := filepath.Join(dir, "back.hbs")
	curves := filepath.Join(dir, "curves.wav")
	code, _, _ = runCLI(t, "-export-legacy", "HBS", "-o", back, "-curves", curves, native)
	require.Equal(t, exitOK, code)
	require.FileExists(t, back)
	require.FileExists(t, curves)

	reimported, err := entrain.ImportLegacy(context.Background(), back)
	require.NoError(t, err)
	assert.Equal(t, float32(1200), reimported.Length)
}

func TestRun_CannotCreate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "p.sin")
	require.NoError(t, entrain.SavePreset(context.Background(), path, preset.NewDefault()))

	out := filepath.Join(t.TempDir(), "missing", "dir", "curves.wav")
	code, _, stderr := runCLI(t, "-curves", out, path)
	assert.Equal(t, exitCannotWrite, code)
	assert.Contains(t, stderr, "Can't create file")

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
