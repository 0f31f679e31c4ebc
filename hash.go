// Snapshot fingerprints.
//
// A fingerprint is a 16 hex character digest of a state's JSON encoding.
// The encoding is canonical (sorted map keys), so two states with equal
// contents always share a fingerprint. Hosts keep the fingerprint of the
// state they opened a Store from and compare it with the state Done
// returns to learn whether a transaction changed anything.
package ropex

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint algorithms. The values are stored by hosts next to the
// fingerprints they produced and must not change.
const (
	AlgXXHash3 = 1
	AlgFNV1a   = 2
	AlgBlake2b = 3
)

// Fingerprint returns the digest of s under alg. An alg of 0 selects
// AlgXXHash3.
func Fingerprint[K Key, E any](s State[K, E], alg int) (string, error) {
	if alg == 0 {
		alg = AlgXXHash3
	}
	data, err := Encode(s)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum, ok := digest(data, alg)
	if !ok {
		return "", fmt.Errorf("fingerprint: %w: %d", ErrUnknownAlgorithm, alg)
	}
	return fmt.Sprintf("%016x", sum), nil
}

// digest reduces an encoded snapshot to 64 bits. Blake2b is truncated to
// its first 8 bytes.
func digest(snapshot []byte, alg int) (uint64, bool) {
	switch alg {
	case AlgXXHash3:
		return xxh3.Hash(snapshot), true
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(snapshot)
		return h.Sum64(), true
	case AlgBlake2b:
		sum := blake2b.Sum256(snapshot)
		return binary.BigEndian.Uint64(sum[:8]), true
	}
	return 0, false
}
