// SPDX-License-Identifier: EPL-2.0

package hes

// PadNibble fills the low half of the last byte of odd-length text.
const PadNibble = 0xE

const alphabet = "0123456789.,\n-"

var nibbles = func() (t [256]byte) {
	for i := range t {
		t[i] = PadNibble
	}
	for i := range len(alphabet) {
		t[alphabet[i]] = byte(i)
	}

	return t
}()

var chars = func() (t [16]byte) {
	copy(t[:], alphabet)

	return t
}()

// Pack maps each character of text to a nibble and packs them two per byte.
// Characters outside the alphabet become PadNibble.
func Pack(text []byte) []byte {
	out := make([]byte, (len(text)+1)/2)
	for i := 0; i < len(text); i += 2 {
		hi := nibbles[text[i]]
		lo := byte(PadNibble)
		if i+1 < len(text) {
			lo = nibbles[text[i+1]]
		}
		out[i/2] = hi<<4 | lo
	}

	return out
}

// Unpack reverses Pack. Nibbles outside the alphabet unpack to NUL.
func Unpack(packed []byte) []byte {
	out := make([]byte, len(packed)*2)
	for i, b := range packed {
		out[2*i] = chars[b>>4]
		out[2*i+1] = chars[b&0x0F]
	}

	return out
}
