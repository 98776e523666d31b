package chainmap

import "math"

const (
	chunkBits = 8
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1

	// Slots are stored in the bucket array as slot+1, which must fit in an uint32.
	maxSlots = math.MaxUint32 - 1
)

// Entries are allocated from fixed-size chunks that are never reallocated,
// so an *Entry stays valid for the lifetime of the table and every entry
// can be addressed by its slot.
type arena[K comparable, V any] struct {
	chunks [][]Entry[K, V]
	length uint32
}

func (a *arena[K, V]) alloc(key K, val V, hash uint64) (e *Entry[K, V], err error) {
	if a.length >= maxSlots {
		return nil, ErrTableFull
	}

	slot := a.length
	chunk := int(slot >> chunkBits)

	if chunk == len(a.chunks) {
		a.chunks = append(a.chunks, make([]Entry[K, V], chunkSize))
	}

	e = &a.chunks[chunk][slot&chunkMask]
	e.key, e.value, e.hash, e.slot = key, val, hash, slot
	a.length++

	return
}

func (a *arena[K, V]) at(slot uint32) *Entry[K, V] {
	return &a.chunks[slot>>chunkBits][slot&chunkMask]
}

func (a *arena[K, V]) len() int {
	return int(a.length)
}
