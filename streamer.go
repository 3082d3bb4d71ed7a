package polyval

import "fmt"

// Update advances acc by the POLYVAL absorption formula over the N = len(in)/16
// blocks in in, using the precomputed powers of H in keys:
//
//	acc' = H^N * acc  +  H^N * M_0  +  H^(N-1) * M_1  +  ...  +  H^1 * M_(N-1)
//
// in must be a whole number of 16-byte blocks; Update panics otherwise. N == 0
// is a no-op. keys must have been built from the same H used everywhere else
// acc is updated, and must outlive the call.
//
// Update is synchronous, allocation-free, and safe to call concurrently with
// other calls that reference the same keys but a different acc.
func Update(acc *Block, keys *KeyPowers, in []byte) {
	if len(in)%BlockSize != 0 {
		panic(fmt.Sprintf("polyval: input length %d is not a multiple of %d", len(in), BlockSize))
	}
	n := len(in) / BlockSize

	// Phase 1: tail alignment. Consuming the r = n mod 8 leading blocks
	// first (rather than last) brings the remaining block count to a
	// multiple of 8 before the stride loop starts, mirroring the
	// aarch64 source's ordering (see design notes on the two orderings
	// the reference assembly uses).
	if r := n % keyPowersLen; r > 0 {
		*acc = absorb(*acc, keys, r, in)
		in = in[r*BlockSize:]
	}

	// Phase 2: full 8-block strides. Each stride folds the accumulator
	// from the previous stride (or from phase 1) together with the
	// stride's 8 blocks in one deferred reduction; see absorb.
	for len(in) > 0 {
		*acc = absorb(*acc, keys, keyPowersLen, in)
		in = in[keyPowersLen*BlockSize:]
	}
}

// absorb folds count blocks (count in 1..=8) from the front of blocks into
// acc, returning the new accumulator. It implements one pass of the
// specification's "Critical scheduling invariant": the partial products of
// acc and every block in the chunk are accumulated as a single 256-bit
// polynomial (ph, pl) before the one Montgomery reduction that produces the
// result. Because clmul64, xor, and reduce are all linear over GF(2), doing
// one reduction per chunk here is bit-for-bit identical to whatever
// instruction schedule a hand-written kernel uses to interleave that
// reduction with the next chunk's multiplies — the specification calls this
// out explicitly as an implementation freedom (see design notes on
// interleaved reduction).
//
// The block at blocks[j] (for j in 0..count-1) is paired with keys.power(count-j);
// acc itself is paired with keys.power(count), matching the leading term
// H^count * acc in the absorption formula.
func absorb(acc Block, keys *KeyPowers, count int, blocks []byte) Block {
	topPower := keys.power(count)
	ph, pl := rawMultiply(acc, topPower)

	for j := 0; j < count; j++ {
		var m Block
		m.SetBytes(blocks[j*BlockSize : (j+1)*BlockSize])

		termPH, termPL := rawMultiply(m, keys.power(count-j))
		ph = xor(ph, termPH)
		pl = xor(pl, termPL)
	}

	return reduce(ph, pl)
}
