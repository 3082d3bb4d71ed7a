package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
)

//go:generate go run asm.go -out ../clmul_amd64.s -stubs ../clmul_amd64_stub.go -pkg polyval

func main() {
	Package("github.com/kronform/polyval")
	ConstraintExpr("gc,!purego")

	declareClmul64()

	Generate()
}

// declareClmul64 emits a PCLMULQDQ carryless multiply writing its 128-bit
// product into *z, the same shape as the teacher's ctmulAsm but renamed to
// match clmul64's (hi, lo) split in fieldops.go. Not wired into clmul64's
// dispatch yet: see DESIGN.md for why the generated .s is not checked in.
func declareClmul64() {
	TEXT("clmul64Asm", NOSPLIT, "func(z *[2]uint64, x, y uint64)")
	Pragma("noescape")

	z := Load(Param("z"), GP64())
	x := Load(Param("x"), XMM())
	y := Load(Param("y"), XMM())
	PCLMULQDQ(U8(0x00), x, y)
	MOVOU(y, Mem{Base: z})

	RET()
}
