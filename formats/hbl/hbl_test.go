// SPDX-License-Identifier: EPL-2.0

package hbl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/internal/presettest"
	"github.com/ik5/entrain/legacy"
)

const point = `t="%s" binauralFrequency="10" binauralFrequencyInterpolationF="2" binauralVolume="1" binauralVolumeInterpolationF="1" noiseVolume="0.3" noiseVolumeInterpolationF="0.5"`

func pointAt(t string) string {
	return strings.Replace(point, "%s", t, 1)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for name, be := range map[string]*legacy.BinauralEnvelope{
		"empty":           legacy.New(),
		"session":         presettest.Session(t),
		"every character": presettest.EveryCharacter(t),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, Encoder{}.Encode(&buf, be))

			got, err := Decoder{}.Decode(&buf)
			require.NoError(t, err)
			assert.True(t, be.Equal(got, presettest.Tolerance))
		})
	}
}

func TestEncode_Document(t *testing.T) {
	t.Parallel()

	be := presettest.NewLegacy(t, 220, legacy.Row{T: 0, BinauralFrequency: 10, BinauralFrequencyCurvature: 1, BinauralVolume: 1, BinauralVolumeCurvature: 1, NoiseVolume: 0.3, NoiseVolumeCurvature: 1})

	var buf bytes.Buffer
	require.NoError(t, Encoder{}.Encode(&buf, be))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<BinauralEnvelope baseFrequency="220">`), out)
	assert.Contains(t, out, `<Point t="0" binauralFrequency="10" binauralFrequencyInterpolationF="1" binauralVolume="1" binauralVolumeInterpolationF="1" noiseVolume="0.3" noiseVolumeInterpolationF="1">`)
	assert.True(t, strings.HasSuffix(out, "</BinauralEnvelope>\n"), out)
}

func TestDecode_Tolerant(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!-- exported by HBX Binaural Player -->
<BinauralEnvelope baseFrequency="200.0">
	some stray text
	<!-- a comment -->
	<Point ` + pointAt("0.0") + `/>
	<point ` + pointAt("30") + `></point>
	<POINT ` + pointAt("60") + `><Note>ignored</Note></POINT>
	<Marker name="intro"/>
</BinauralEnvelope>
`

	be, err := Decoder{}.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 200.0, be.BaseFrequency())

	rows := be.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []float64{0, 30, 60}, []float64{rows[0].T, rows[1].T, rows[2].T})
	assert.Equal(t, 2.0, rows[1].BinauralFrequencyCurvature)
	assert.Equal(t, 0.5, rows[2].NoiseVolumeCurvature)
}

func TestDecode_NestedRoot(t *testing.T) {
	t.Parallel()

	doc := `<Library><BinauralEnvelope baseFrequency="180"><Point ` + pointAt("5") + `/></BinauralEnvelope></Library>`

	be, err := Decoder{}.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 180.0, be.BaseFrequency())
	assert.Len(t, be.Rows(), 1)
}

func TestDecode_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		message string
	}{
		{name: "empty", doc: "", message: "no BinauralEnvelope element"},
		{name: "wrong root", doc: `<Preset/>`, message: "no BinauralEnvelope element"},
		{name: "root name is case sensitive", doc: `<binauralenvelope baseFrequency="1"/>`, message: "no BinauralEnvelope element"},
		{name: "missing base", doc: `<BinauralEnvelope/>`, message: "baseFrequency"},
		{name: "bad base", doc: `<BinauralEnvelope baseFrequency="low"/>`, message: "not a finite number"},
		{
			name:    "missing point attribute",
			doc:     `<BinauralEnvelope baseFrequency="220"><Point t="0" binauralFrequency="10"/></BinauralEnvelope>`,
			message: "binauralFrequencyInterpolationF",
		},
		{
			name:    "non numeric point attribute",
			doc:     `<BinauralEnvelope baseFrequency="220"><Point ` + pointAt("soon") + `/></BinauralEnvelope>`,
			message: "not a finite number",
		},
		{
			name:    "negative time",
			doc:     `<BinauralEnvelope baseFrequency="220"><Point ` + pointAt("-4") + `/></BinauralEnvelope>`,
			message: "negative",
		},
		{name: "unclosed root", doc: `<BinauralEnvelope baseFrequency="220"><Point ` + pointAt("1") + `/>`, message: "malformed XML"},
		{name: "garbage after root", doc: `<BinauralEnvelope baseFrequency="220"></BinauralEnvelope></oops>`, message: "malformed XML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			be, err := Decoder{}.Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, be)
			assert.Equal(t, codec.ErrDecode, errors.Cause(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
