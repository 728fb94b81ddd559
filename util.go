package huffpack

import (
	mathbits "math/bits"
)

// log2int returns the number of bits needed to represent x, treating 0 as 1.
func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}

// paddingFor returns the number of zero bits appended to a body of nbits
// bits.  The result is always in [1, 8]: an already aligned body still gets a
// full byte of padding, so the padding header is never zero.
func paddingFor(nbits uint64) byte {
	return 8 - byte(nbits%8)
}
