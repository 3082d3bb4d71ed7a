package polyval

import "fmt"

// keyPowersLen is the number of precomputed powers of H a KeyPowers
// table holds: one per block of the streamer's 8-wide stride.
const keyPowersLen = 8

// KeyPowers is the precomputed table of the first 8 "dot powers" of H,
// built once from a raw 16-byte hash key and read-only thereafter. It
// must outlive every Update call that references it. A KeyPowers is
// safe for concurrent read-only use by multiple Update calls operating
// on disjoint accumulators.
//
// pow[0] is H itself; pow[i] is BlockMul(pow[i-1], pow[0]), i.e. H
// "dotted" with itself i+1 times. Because BlockMul's dot operation folds
// in a reduction by x^-128 on every call, pow[i] is not the ordinary
// field power H^(i+1) but H^(i+1) * x^(-128*i) — the representation the
// specification calls Montgomery form, distinguished from an ordinary
// Block only by this table's internal convention (spec §4.3 option b):
// the streamer's deferred per-chunk reduction is what removes the extra
// x^-128 factors again, so pow[] is exactly the table absorb needs and
// never needs to be converted back to an ordinary H^i.
type KeyPowers struct {
	pow [keyPowersLen]Block
}

// NewKeyPowers builds the KeyPowers table for the given 16-byte raw
// POLYVAL hash key.
func NewKeyPowers(key []byte) (*KeyPowers, error) {
	if len(key) != BlockSize {
		return nil, fmt.Errorf("polyval: invalid key size: %d", len(key))
	}
	var h Block
	h.SetBytes(key)

	var kp KeyPowers
	kp.pow[0] = h
	for i := 1; i < keyPowersLen; i++ {
		kp.pow[i] = blockMul(kp.pow[i-1], kp.pow[0])
	}
	return &kp, nil
}

// power returns pow[i-1], for i in 1..=8 (see KeyPowers).
func (kp *KeyPowers) power(i int) Block {
	return kp.pow[i-1]
}
