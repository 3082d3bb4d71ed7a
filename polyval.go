// Package polyval implements the POLYVAL universal hash over GF(2^128)
// defined in RFC 8452 §3, the hash underlying AES-GCM-SIV and HCTR2.
//
// POLYVAL is closely related to GHASH but operates in the field's
// native little-endian bit order rather than GHASH's bit-reflected
// order; see the internal/gcm package for the bridge between the two.
package polyval

import "fmt"

// New creates a Polyval keyed by the given 16-byte hash key.
func New(key []byte) (*Polyval, error) {
	keys, err := NewKeyPowers(key)
	if err != nil {
		return nil, err
	}
	return &Polyval{keys: keys}, nil
}

// Polyval accumulates a POLYVAL digest over a stream of whole 16-byte
// blocks. It is the ergonomic wrapper around the core Update function:
// it owns its own accumulator and KeyPowers table and buffers nothing,
// matching the hash.Hash-like shape of the teacher library this package
// is descended from, though Polyval (unlike hash.Hash) only accepts
// whole blocks — byte-granular tail buffering is left to callers.
type Polyval struct {
	keys *KeyPowers
	acc  Block
}

// Size returns the size in bytes of a POLYVAL digest.
func (p *Polyval) Size() int { return BlockSize }

// BlockSize returns the size in bytes of a POLYVAL block.
func (p *Polyval) BlockSize() int { return BlockSize }

// Reset clears the accumulator to its initial state. It does not affect
// the key.
func (p *Polyval) Reset() { p.acc = Block{} }

// Update absorbs blocks into the running digest.
//
// Update panics if len(blocks) is not a multiple of BlockSize.
func (p *Polyval) Update(blocks []byte) {
	Update(&p.acc, p.keys, blocks)
}

// Sum appends the current 16-byte digest to b and returns the resulting
// slice. It does not change the underlying accumulator.
func (p *Polyval) Sum(b []byte) []byte {
	digest := p.acc.Bytes()
	return append(b, digest[:]...)
}

// MarshalBinary returns the accumulator's state, suitable for resuming a
// digest later with UnmarshalBinary. It does not capture the key.
func (p *Polyval) MarshalBinary() (data []byte, err error) {
	digest := p.acc.Bytes()
	return digest[:], nil
}

// UnmarshalBinary restores an accumulator previously saved with
// MarshalBinary. The receiver must already have a key set via New.
func (p *Polyval) UnmarshalBinary(data []byte) error {
	if len(data) != BlockSize {
		return fmt.Errorf("polyval: invalid saved state size: %d", len(data))
	}
	p.acc.SetBytes(data)
	return nil
}

// Sum computes the POLYVAL digest of blocks under key in one call. It is
// equivalent to, but avoids the heap allocation of, New followed by
// Update and Sum.
func Sum(key, blocks []byte) ([BlockSize]byte, error) {
	keys, err := NewKeyPowers(key)
	if err != nil {
		return [BlockSize]byte{}, err
	}
	var acc Block
	Update(&acc, keys, blocks)
	return acc.Bytes(), nil
}
