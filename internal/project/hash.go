package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// HashBytes computes the digest of raw content.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

// Combine строит составной хеш: H( base || extra1 || extra2 ... ).
// Порядок аргументов должен быть детерминированным.
func Combine(base Digest, extras ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(base[:])
	for _, d := range extras {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
