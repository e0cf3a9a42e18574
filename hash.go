package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// Builds the default hash function on top of the runtime hasher, bound to
// the given seed. Equal keys hash equally for the lifetime of the table.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHashFunc hashes string keys with xxhash. Seedless and cheap for
// string-heavy workloads; plug it in via WithHashFunc.
func StringHashFunc() HashFunc[string] {
	return xxhash.Sum64String
}

// mix spreads the high bits of a hash into the low bits. Bucket selection
// keeps only the low log2(capacity) bits, so a hash function with poor
// low-bit entropy would otherwise pile everything into a few chains.
// Any avalanche mixer would do here, this one is not a compatibility
// contract.
func mix(h uint64) uint64 {
	h ^= (h >> 20) ^ (h >> 12)
	return h ^ (h >> 7) ^ (h >> 4)
}
