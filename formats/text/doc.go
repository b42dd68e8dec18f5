// SPDX-License-Identifier: EPL-2.0

// Package text implements the canonical line-oriented form of a legacy
// binaural envelope.
//
// # Layout
//
// The first line is the base frequency. Every following line is one control
// point, seven comma-separated numbers:
//
//	220
//	0,10,1,1,1,0.3,1
//	60,4,2,0.8,1,0.5,1
//
// The fields are t, binaural frequency, its curvature, binaural volume, its
// curvature, noise volume and its curvature. Numbers are plain decimals with
// no exponent and no trailing ".0", which keeps the output inside the
// fourteen-character alphabet the HES packer relies on.
//
// # Decoding
//
// Empty lines are skipped and surrounding whitespace or NUL padding on a line
// is ignored. Every point line must hold exactly seven finite numbers; one
// bad line rejects the whole input.
package text
