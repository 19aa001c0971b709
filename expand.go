package csvtape

import "math/bits"

// bufExtension is the number of extra slots reserved beyond one block's
// worst case, absorbing several consecutive dense blocks without a
// reallocation on every call.
const bufExtension = 64

// appendSetBits expands the set bits of structural, each representing a
// byte offset relative to base, into absolute offsets appended to idx.
//
// The loop always performs exactly blockSize extractions — one for every
// bit position a 64-byte block could possibly set — regardless of how many
// bits are actually set, consuming structural with the branch-free bit-clear
// trick (x &= x-1) eight extractions at a time. There is no per-bit
// conditional: a sparse mask costs exactly what a dense one does, which is
// what keeps this free of the misprediction a variable-trip loop would pay
// on sparse input. count_ones(structural) is computed once up front and the
// slice is truncated to that length afterward, discarding the extractions
// that ran past the true count; those discarded writes always land in
// capacity reserved before the loop starts, never in a reallocation.
func appendSetBits(idx []int, structural uint64, base int) []int {
	want := bits.OnesCount64(structural)

	if cap(idx)-len(idx) < blockSize {
		grown := make([]int, len(idx), 2*len(idx)+blockSize+bufExtension)
		copy(grown, idx)
		idx = grown
	}
	start := len(idx)

	for pass := 0; pass < blockSize/8; pass++ {
		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1

		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1

		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1

		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1

		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1

		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1

		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1

		idx = append(idx, base+bits.TrailingZeros64(structural))
		structural &= structural - 1
	}

	return idx[:start+want]
}
