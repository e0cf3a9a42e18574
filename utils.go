package chainmap

import "math/bits"

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// normalizeCapacity rounds capacity up to a power of two within
// [minCapacity, limit]. The limit must be a power of two itself.
func normalizeCapacity(capacity, limit int) int {
	if capacity < minCapacity {
		return minCapacity
	}

	if capacity >= limit {
		return limit
	}

	return int(NextPowerOf2(uint32(capacity)))
}
