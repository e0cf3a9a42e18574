package chainmap

import (
	"errors"
	"hash/maphash"
)

const (
	minCapacity        = 4
	defaultCapacity    = 4
	defaultMaxCapacity = 1 << 30

	defaultLoadThreshold = 0.75
)

// ErrCapacityExceeded is returned by Put when inserting a new key would
// require growing past the maximum capacity. The failed insert leaves the
// table untouched.
var ErrCapacityExceeded = errors.New("chainmap: maximum capacity exceeded")

type table[K, V comparable] struct {
	buckets []bucket[K, V]

	capacity      int
	maxCapacity   int
	size          int
	loadThreshold float64

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K, V comparable] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K, V comparable](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override the default initial capacity of 4. Rounded up to a power of two
// and clamped to the maximum capacity.
func WithCapacity[K, V comparable](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.capacity = capacity
	}
}

// Override the default growth ceiling of 1<<30. Rounded up to a power of
// two, never above 1<<30 and never below the initial capacity.
func WithMaxCapacity[K, V comparable](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxCapacity = capacity
	}
}

// Override the default load threshold of 0.75. Values outside (0, 1] fall
// back to the default.
func WithLoadThreshold[K, V comparable](threshold float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.loadThreshold = threshold
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.capacity = defaultCapacity
	t.maxCapacity = defaultMaxCapacity
	t.loadThreshold = defaultLoadThreshold

	for _, opt := range opts {
		opt(t)
	}

	if t.loadThreshold <= 0 || t.loadThreshold > 1 {
		t.loadThreshold = defaultLoadThreshold
	}

	t.maxCapacity = normalizeCapacity(t.maxCapacity, defaultMaxCapacity)
	t.capacity = normalizeCapacity(t.capacity, t.maxCapacity)
	t.buckets = make([]bucket[K, V], t.capacity)

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

// bucketIndex reduces a key's hash to an index in [0, capacity). Capacity
// is a power of two, so the mask is equivalent to a modulo.
func (t *table[K, V]) bucketIndex(key K) int {
	return int(mix(t.hashFunc(key)) & uint64(t.capacity-1))
}

func (t *table[K, V]) get(key K) (V, bool) {
	b := t.buckets[t.bucketIndex(key)]
	if i := b.find(key); i >= 0 {
		return b[i].value, true
	}

	return t.emptyV, false
}

func (t *table[K, V]) put(key K, value V) (V, error) {
	idx := t.bucketIndex(key)

	// Update in place. The element count does not change, so this path
	// never grows the table.
	if i := t.buckets[idx].find(key); i >= 0 {
		prev := t.buckets[idx][i].value
		t.buckets[idx][i].value = value

		return prev, nil
	}

	if float64(t.size) >= float64(t.capacity)*t.loadThreshold {
		if t.capacity == t.maxCapacity {
			return t.emptyV, ErrCapacityExceeded
		}

		t.grow()
		idx = t.bucketIndex(key)
	}

	t.buckets[idx] = append(t.buckets[idx], entry[K, V]{key: key, value: value})
	t.size++

	return value, nil
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.bucketIndex(key)
	b := t.buckets[idx]

	i := b.find(key)
	if i < 0 {
		// Absent key: size must not move.
		return false
	}

	t.buckets[idx] = append(b[:i], b[i+1:]...)
	t.size--

	return true
}

func (t *table[K, V]) containsKey(key K) bool {
	return t.buckets[t.bucketIndex(key)].find(key) >= 0
}

// containsValue is a full scan, values are not indexed.
func (t *table[K, V]) containsValue(value V) bool {
	for _, b := range t.buckets {
		for i := range b {
			if b[i].value == value {
				return true
			}
		}
	}

	return false
}

func (t *table[K, V]) clear() {
	clear(t.buckets)
	t.size = 0
}

// grow doubles the capacity and redistributes every entry. Stop-the-world:
// snapshot all entries, swap in a fresh bucket array, then reinsert through
// the normal put path so each index is recomputed under the new mask.
// Reinsertion cannot grow again, the threshold was satisfied for half this
// capacity before doubling.
func (t *table[K, V]) grow() {
	entries := make([]entry[K, V], 0, t.size)
	for _, b := range t.buckets {
		entries = append(entries, b...)
	}

	t.capacity <<= 1
	t.buckets = make([]bucket[K, V], t.capacity)
	t.size = 0

	for _, e := range entries {
		t.put(e.key, e.value)
	}
}
