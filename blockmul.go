package polyval

// rawMultiply computes the 256-bit polynomial product of a and b,
// without reduction, as (ph, pl).
//
// It uses the four-multiply schoolbook decomposition rather than
// Karatsuba: L = a.lo*b.lo, H = a.hi*b.hi, and the two cross terms
// a.lo*b.hi and a.hi*b.lo are computed directly and summed (XORed)
// instead of being derived from (a.hi^a.lo)*(b.hi^b.lo) and then
// corrected. Either decomposition produces the identical (ph, pl); this
// port always uses the four-multiply form so that every FieldOps
// half-select primitive (clmulLL/LH/HL/HH) has a caller.
func rawMultiply(a, b Block) (ph, pl Block) {
	lhi, llo := clmulLL(a, b)
	hhi, hlo := clmulHH(a, b)
	m1hi, m1lo := clmulLH(a, b)
	m2hi, m2lo := clmulHL(a, b)

	mhi := m1hi ^ m2hi
	mlo := m1lo ^ m2lo

	x0 := llo
	x1 := lhi ^ mlo
	x2 := mhi ^ hlo
	x3 := hhi

	pl = Block{hi: x1, lo: x0}
	ph = Block{hi: x3, lo: x2}
	return ph, pl
}

// BlockMul sets dst to dst * op * x^-128 mod P, the POLYVAL "dot"
// operation, per the external interface in the specification
// (block_mul(op1, op2) replaces op1 with BlockMul(op1, op2)).
//
// BlockMul is commutative, associative under this dot composition, and
// distributes over xor (see block_test.go for the property tests this
// is required to satisfy). Repeated dotting of H with itself is exactly
// how KeyPowers builds its table, and a single block's digest is exactly
// one BlockMul of that block with H.
func BlockMul(dst *Block, op *Block) {
	ph, pl := rawMultiply(*dst, *op)
	*dst = reduce(ph, pl)
}

// blockMul is the value-returning form of BlockMul, used internally
// where mutating a pointer in place would be awkward (key-table
// construction, reference/test code).
func blockMul(a, b Block) Block {
	ph, pl := rawMultiply(a, b)
	return reduce(ph, pl)
}
