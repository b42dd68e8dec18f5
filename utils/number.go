// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v in plain decimal notation with the fewest digits
// that parse back to the same float64. It never emits an exponent.
// A trailing ".0" is dropped, so integral values come out as "220".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.TrimSuffix(s, ".0")
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
