package polyval

import "golang.org/x/sys/cpu"

// haveAsm reports whether the current CPU has a polynomial-multiply
// instruction (PMULL) that a future backend could dispatch clmul64 to.
// See the amd64 counterpart for why clmul64 does not yet branch on it.
var haveAsm = cpu.ARM64.HasPMULL
