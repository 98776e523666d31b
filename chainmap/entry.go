package chainmap

// A key/value pair in a bucket chain. The entry owns the rest of its chain
// through next; the bucket owns the first entry.
type Entry[K comparable, V any] struct {
	next  *Entry[K, V]
	hash  uint64
	slot  uint32
	key   K
	value V
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() V {
	return e.value
}

func (e *Entry[K, V]) SetValue(val V) {
	e.value = val
}

// Next entry in the same bucket, or nil at the end of the chain.
func (e *Entry[K, V]) Next() *Entry[K, V] {
	return e.next
}

func (e *Entry[K, V]) setNext(next *Entry[K, V]) {
	e.next = next
}
