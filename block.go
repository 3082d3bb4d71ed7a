package polyval

import (
	"encoding/binary"
	"fmt"
)

// BlockSize is the size in bytes of a POLYVAL block and digest.
const BlockSize = 16

// Block is a little-endian element of GF(2^128): byte i contributes bits
// 8i..8i+7, and within a byte bit 0 is the lowest-degree coefficient.
//
// The zero Block is the additive identity.
type Block struct {
	lo, hi uint64
}

// MontgomeryBlock is a Block that represents the field element a * x^128
// mod P instead of a directly. The bit layout is identical to Block; the
// distinction is enforced only by the type system, not by any runtime tag.
type MontgomeryBlock = Block

func (b Block) String() string {
	return fmt.Sprintf("%#0.16x%0.16x", b.hi, b.lo)
}

// SetBytes sets b to the 16-byte little-endian encoding of p.
//
// SetBytes panics if len(p) != BlockSize.
func (b *Block) SetBytes(p []byte) {
	if len(p) != BlockSize {
		panic("polyval: invalid block length")
	}
	b.lo = binary.LittleEndian.Uint64(p[0:8])
	b.hi = binary.LittleEndian.Uint64(p[8:16])
}

// Bytes returns the 16-byte little-endian encoding of b.
func (b Block) Bytes() [BlockSize]byte {
	var out [BlockSize]byte
	binary.LittleEndian.PutUint64(out[0:8], b.lo)
	binary.LittleEndian.PutUint64(out[8:16], b.hi)
	return out
}

// xor returns the field addition of a and b: bitwise XOR.
func xor(a, b Block) Block {
	return Block{lo: a.lo ^ b.lo, hi: a.hi ^ b.hi}
}
