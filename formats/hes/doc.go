// SPDX-License-Identifier: EPL-2.0

// Package hes implements the packed binary form of a legacy binaural
// envelope: the canonical text, four bits per character, gzip compressed.
//
// # Alphabet
//
// Canonical text only ever contains fourteen characters, so each fits in a
// nibble:
//
//	'0'..'9' -> 0x0..0x9
//	'.'      -> 0xA
//	','      -> 0xB
//	'\n'     -> 0xC
//	'-'      -> 0xD
//
// Two nibbles share a byte, high nibble first. When the text has an odd
// length the last low nibble is the pad 0xE. On the way back 0xE and 0xF
// unpack to NUL, which the text parser treats as trailing padding.
//
// # Container
//
// The .hbs file is the three ASCII bytes "HBS" followed by the gzip stream:
//
//	var buf bytes.Buffer
//	err := hes.WriteContainer(&buf, be, gzip.BestCompression)
//
// Decoder reads the gzip stream only; the importer strips the magic header.
package hes
