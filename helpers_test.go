package polyval

import "encoding/hex"

// unhex decodes a hex string, panicking on malformed input. It exists
// purely to keep table-driven test vectors readable across the test
// files in this package.
func unhex(s string) []byte {
	p, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return p
}
