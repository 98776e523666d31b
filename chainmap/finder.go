package chainmap

// Walks one bucket chain, head to tail.
type finder[K comparable, V any] struct {
	entry *Entry[K, V]
	next  *Entry[K, V]
}

func (f *finder[K, V]) Next() bool {
	if f.next == nil {
		return false
	}

	f.entry = f.next
	f.next = f.entry.next

	return true
}

// First entry in the chain with the provided key, or nil.
func (f *finder[K, V]) find(key K) *Entry[K, V] {
	for f.Next() {
		if f.entry.key == key {
			return f.entry
		}
	}

	return nil
}
