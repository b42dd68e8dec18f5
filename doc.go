// SPDX-License-Identifier: EPL-2.0

// Package entrain stores and exchanges entrainment presets: time varying
// curves for binaural beat frequency, beat volume, background noise volume
// and carrier frequency that drive an audio renderer.
//
// # Packages
//
//   - envelope: the piecewise interpolated envelope every curve is made of
//   - legacy: the single track preset of the HBX Binaural Player family
//   - preset: the multi-track preset renderers and editors work with
//   - formats/text, formats/hbl, formats/hes, formats/hbx: legacy codecs
//   - formats/sin: the native preset file
//   - importer: sniffs legacy files and projects them into presets
//   - curve: samples preset envelopes for inspection
//
// # Quick Start
//
// Import a legacy file and save it as a native preset:
//
//	ctx := logger.WithContext(context.Background())
//	p, err := entrain.ImportLegacy(ctx, "session.hbs")
//	if err != nil {
//		return err
//	}
//	err = entrain.SavePreset(ctx, "session.sin", p)
//
// # Errors
//
// Failures carry one of the sentinels in package codec as their cause:
//
//	switch errors.Cause(err) {
//	case codec.ErrIO:
//		// missing or unreadable file
//	case codec.ErrFormat:
//		// not a preset this package knows
//	case codec.ErrDecode:
//		// recognized but broken
//	}
//
// Writes go through a temporary file that is renamed into place, so a failed
// save never leaves a truncated preset behind.
package entrain
