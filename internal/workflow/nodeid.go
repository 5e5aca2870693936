package workflow

import (
	"strconv"
	"unicode/utf16"
)

// NodeIDPrefix prefixes every generated node id
const NodeIDPrefix = "node-"

// NodeID derives a stable node id from seed. The hash runs over UTF-16 code
// units as acc = acc*31 + unit with 32-bit signed wraparound, then renders
// the absolute value in lowercase hex. The result is reproducible across
// runs; it is not a secure or collision-free identifier.
func NodeID(seed string) string {
	var acc int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		acc = acc*31 + int32(unit)
	}

	// Widen before negating so math.MinInt32 does not overflow.
	abs := int64(acc)
	if abs < 0 {
		abs = -abs
	}
	return NodeIDPrefix + strconv.FormatInt(abs, 16)
}
