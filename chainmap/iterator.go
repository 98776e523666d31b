package chainmap

// Walks all entries: buckets in index order, each chain from head to tail.
// The order is only meaningful until the next resize.
type Iterator[K comparable, V any] struct {
	table  *Table[K, V]
	entry  *Entry[K, V]
	next   *Entry[K, V]
	bucket int
}

func (iter *Iterator[K, V]) Next() bool {
	for iter.next == nil {
		if iter.bucket >= iter.table.head.capacity {
			return false
		}

		iter.next = iter.table.first(iter.bucket)
		iter.bucket++
	}

	iter.entry = iter.next
	iter.next = iter.entry.next

	return true
}

func (iter *Iterator[K, V]) Entry() *Entry[K, V] {
	return iter.entry
}

func (iter *Iterator[K, V]) Key() K {
	return iter.entry.key
}

func (iter *Iterator[K, V]) Value() V {
	return iter.entry.value
}

// Bucket of the current entry.
func (iter *Iterator[K, V]) Bucket() int {
	return iter.bucket - 1
}
