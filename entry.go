package chainmap

// entry is an owned key/value pair. The key never changes after insert;
// the value is replaced in place on update.
type entry[K, V comparable] struct {
	key   K
	value V
}

// bucket is the chain of entries sharing one reduced hash index.
// A growable slice rather than a linked list: one backing allocation per
// chain, O(1) append, O(k) scan. Order within a chain is insertion order.
type bucket[K, V comparable] []entry[K, V]

// find returns the position of key in the chain, or -1.
func (b bucket[K, V]) find(key K) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}

	return -1
}
