package polyval

import "golang.org/x/sys/cpu"

// haveAsm reports whether the current CPU has a carryless-multiply
// instruction (PCLMULQDQ) that a future backend could dispatch clmul64
// to. clmul64 is portable-only for now (see fieldops.go); haveAsm is
// kept and exercised by tests so that backend selection has a stable
// seam to land in without changing the public API.
var haveAsm = cpu.X86.HasPCLMULQDQ
