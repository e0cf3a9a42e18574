package chainmap

import (
	"fmt"
	"strings"
)

// ChainMap is a generic key/value container backed by an array of chained
// buckets. Distinct keys reducing to the same bucket index share a chain
// and are told apart by key equality. The bucket array doubles once the
// live entry count reaches capacity*loadThreshold, so chains stay short.
// Values must be comparable too: ContainsValue and the set views compare
// them by equality.
// Not safe for concurrent use without external synchronization. Iteration
// order is unspecified.
type ChainMap[K, V comparable] struct {
	table[K, V]
}

// Entry is an exported key/value pair, as produced by EntrySet.
type Entry[K, V comparable] struct {
	Key   K
	Value V
}

// Returns a new instance of the chain map.
func New[K, V comparable](opts ...Option[K, V]) *ChainMap[K, V] {
	var cm ChainMap[K, V]
	cm.init(opts...)

	return &cm
}

// Get returns the value stored for key. The second return reports whether
// the key was present; a miss is a normal outcome, not an error.
func (cm *ChainMap[K, V]) Get(key K) (V, bool) {
	return cm.get(key)
}

// Put stores value under key. On a fresh insert it returns the value just
// stored; on an update of an existing key it returns the value that was
// replaced. Returns ErrCapacityExceeded when a new key would require
// growing past the maximum capacity, in which case nothing is inserted.
func (cm *ChainMap[K, V]) Put(key K, value V) (V, error) {
	return cm.put(key, value)
}

// Remove deletes the entry for key if one exists. Removing an absent key
// is a silent no-op.
func (cm *ChainMap[K, V]) Remove(key K) {
	cm.delete(key)
}

// ContainsKey reports whether key is present.
func (cm *ChainMap[K, V]) ContainsKey(key K) bool {
	return cm.containsKey(key)
}

// ContainsValue reports whether any entry holds value. Linear in the
// number of entries.
func (cm *ChainMap[K, V]) ContainsValue(value V) bool {
	return cm.containsValue(value)
}

// Clear drops every entry. Capacity is retained.
func (cm *ChainMap[K, V]) Clear() {
	cm.clear()
}

// Size returns the number of live entries.
func (cm *ChainMap[K, V]) Size() int {
	return cm.size
}

func (cm *ChainMap[K, V]) IsEmpty() bool {
	return cm.size == 0
}

// Capacity returns the current length of the bucket array.
func (cm *ChainMap[K, V]) Capacity() int {
	return cm.capacity
}

// KeySet returns a snapshot set of all keys. The set is an independent
// copy: later mutations of the map do not show up in it, and mutating the
// set does not touch the map.
func (cm *ChainMap[K, V]) KeySet() *Set[K] {
	keys := NewSet[K](cm.size)
	for _, b := range cm.buckets {
		for i := range b {
			keys.Add(b[i].key)
		}
	}

	return keys
}

// ValueSet returns a snapshot set of all values. Being a set, duplicate
// values stored under distinct keys collapse to a single element, so its
// length may be smaller than Size.
func (cm *ChainMap[K, V]) ValueSet() *Set[V] {
	values := NewSet[V](cm.size)
	for _, b := range cm.buckets {
		for i := range b {
			values.Add(b[i].value)
		}
	}

	return values
}

// EntrySet returns a snapshot set of all key/value pairs.
func (cm *ChainMap[K, V]) EntrySet() *Set[Entry[K, V]] {
	entries := NewSet[Entry[K, V]](cm.size)
	for _, b := range cm.buckets {
		for i := range b {
			entries.Add(Entry[K, V]{Key: b[i].key, Value: b[i].value})
		}
	}

	return entries
}

// String renders all entries as [k1=v1, k2=v2] in unspecified order.
func (cm *ChainMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')

	first := true
	for _, b := range cm.buckets {
		for i := range b {
			if !first {
				sb.WriteString(", ")
			}
			first = false

			fmt.Fprintf(&sb, "%v=%v", b[i].key, b[i].value)
		}
	}

	sb.WriteByte(']')

	return sb.String()
}
