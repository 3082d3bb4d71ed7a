package polyval

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/kronform/polyval/internal/gcm"
)

// TestFuzzGCM cross-checks POLYVAL against the GHASH implementation in
// internal/gcm, following the well-known identity between the two
// (RFC 8452 appendix A):
//
//	GHASH(H, X_1, ..., X_n) =
//	    ByteReverse(POLYVAL(mulx(ByteReverse(H)), ByteReverse(X_1), ...))
//
// and its inverse. This exercises Update/KeyPowers against a
// second, independently-sourced GF(2^128) implementation rather than
// only against this package's own scalar reference.
func TestFuzzGCM(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 10 * time.Millisecond
	}
	timer := time.NewTimer(d)

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewSource(seed))

	key := make([]byte, BlockSize)
	const n = 50
	blocks := make([]byte, BlockSize*n)
	for i := 0; ; i++ {
		select {
		case <-timer.C:
			t.Logf("iters: %d", i)
			return
		default:
		}

		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}
		m := rng.Intn(n-1) + 1
		blocks := blocks[:m*BlockSize]
		if _, err := rand.Read(blocks); err != nil {
			t.Fatal(err)
		}

		gcmToPolyval(t, key, blocks)
		polyvalToGCM(t, key, blocks)
	}
}

func gcmToPolyval(t *testing.T, key, blocks []byte) {
	t.Helper()
	want := gcm.New(gcm.Mulx(byteRev(key)))

	got, err := New(key)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(blocks); i += BlockSize {
		b := blocks[i : i+BlockSize]
		want.UpdateBlocks(byteRev(b))
		got.Update(b)
	}

	wantHash := byteRev(want.Sum(nil))
	gotHash := got.Sum(nil)
	if !bytes.Equal(wantHash, gotHash) {
		t.Fatalf("expected %x, got %x", wantHash, gotHash)
	}
}

func polyvalToGCM(t *testing.T, key, blocks []byte) {
	t.Helper()
	want := gcm.New(key)

	got, err := New(mulxBytes(byteRev(key)))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(blocks); i += BlockSize {
		b := blocks[i : i+BlockSize]
		want.UpdateBlocks(b)
		got.Update(byteRev(b))
	}

	wantHash := want.Sum(nil)
	gotHash := byteRev(got.Sum(nil))
	if !bytes.Equal(wantHash, gotHash) {
		t.Fatalf("expected %x, got %x", wantHash, gotHash)
	}
}

// mulxBytes converts the 16-byte little-endian string s into a Block,
// multiplies it by x (double), and converts it back.
func mulxBytes(s []byte) []byte {
	var z Block
	z.SetBytes(s)
	out := double(z).Bytes()
	return out[:]
}

// byteRev returns the 16-byte string s with its bytes reversed.
func byteRev(s []byte) []byte {
	lo := bits.ReverseBytes64(binary.LittleEndian.Uint64(s[0:8]))
	hi := bits.ReverseBytes64(binary.LittleEndian.Uint64(s[8:16]))
	r := make([]byte, BlockSize)
	binary.LittleEndian.PutUint64(r[0:8], hi)
	binary.LittleEndian.PutUint64(r[8:16], lo)
	return r
}
