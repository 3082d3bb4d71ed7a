//go:build !amd64 && !arm64

package polyval

// haveAsm is always false on architectures with no known
// carryless-multiply instruction wired into this package.
var haveAsm = false
