// SPDX-License-Identifier: EPL-2.0

// Package importer loads presets written by the HBX Binaural Player family
// and converts them to the multi-track preset model.
//
// A legacy file goes through these states:
//
//	Unknown -> {XMLText, ObjectBinary, PackedBinary} -> Decoded -> Projected
//
// Files ending in .hbl (any case) are XML text. Any other file is sniffed by
// its first three bytes: "HBX" selects the object binary record and "HBS"
// the packed nibble form. "HBX" is compared first; the two cannot both match.
// A file matching neither fails with codec.ErrFormat.
//
// Projection keeps only what the multi-track model can hold. Every segment
// becomes linear, so the legacy curvature values are lost.
//
//	im := importer.New()
//	p, err := im.Import(ctx, "session.hbs")
//	if errors.Cause(err) == codec.ErrFormat {
//		// not a legacy preset
//	}
package importer
