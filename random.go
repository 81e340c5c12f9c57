package bignum

import (
	"crypto/rand"
	"io"
)

// RandomSource draws n cryptographically meaningful bytes. It is the
// injectable callback that RandomBits and RandomRange consult.
type RandomSource func(n int) ([]byte, error)

// defaultRandomSource reads from crypto/rand.
func defaultRandomSource(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, newError(KindRandomSource, "random source failed: %v", err)
	}
	return buf, nil
}

// checkRandomBytes validates that a RandomSource returned exactly n bytes.
func checkRandomBytes(got []byte, want int, err error) ([]byte, error) {
	if err != nil {
		return nil, newError(KindRandomSource, "random source failed: %v", err)
	}
	if len(got) != want {
		return nil, newError(KindRandomSource, "random source returned %d bytes, want %d", len(got), want)
	}
	return got, nil
}
