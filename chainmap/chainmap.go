package chainmap

import (
	"fmt"
	"log"

	"github.com/webbmaffian/go-chainmap/mmarr"
)

const (
	DefaultCapacity     = 1 << 4
	DefaultLoadFactor   = 0.75
	DefaultGrowthFactor = 2
	MaxCapacity         = 1 << 30
)

// Hash table with separate chaining. Bucket heads live in an anonymously
// mapped array as entry slots (slot+1, zero meaning empty), while the
// entries themselves are allocated from an arena on the Go heap.
// A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	buckets *mmarr.Array[uint32]
	entries arena[K, V]
	head    header
	log     *log.Logger
}

func New[K comparable, V any](opts ...Option) (t *Table[K, V], err error) {
	o := defaultOptions()

	for _, opt := range opts {
		opt(&o)
	}

	if err = o.validate(); err != nil {
		return
	}

	t = &Table[K, V]{
		head: header{
			capacity:     o.capacity,
			loadFactor:   o.loadFactor,
			growthFactor: o.growthFactor,
		},
		log: o.logger,
	}

	if t.buckets, err = mmarr.New[uint32](t.head.capacity); err != nil {
		return nil, fmt.Errorf("failed to allocate %d buckets: %w", t.head.capacity, err)
	}

	return
}

// Releases the bucket array. The table must not be used afterwards.
func (t *Table[K, V]) Close() error {
	return t.buckets.Close()
}

func (t *Table[K, V]) Len() int {
	return t.head.used
}

func (t *Table[K, V]) Cap() int {
	return t.head.capacity
}

func (t *Table[K, V]) LoadFactor() float64 {
	return t.head.loadFactor
}

func (t *Table[K, V]) GrowthFactor() int {
	return t.head.growthFactor
}

// Number of entries at which the next insert grows the table.
func (t *Table[K, V]) Threshold() float64 {
	return t.head.threshold()
}

// Spread hash of the key.
func (t *Table[K, V]) Hash(key K) (h uint64, err error) {
	if h, err = hashOf(key); err != nil {
		return
	}

	return spread(h), nil
}

// Bucket that the key belongs to at the current capacity.
func (t *Table[K, V]) TableIndex(key K) (idx int, err error) {
	h, err := t.Hash(key)

	if err != nil {
		return
	}

	return t.indexOf(h), nil
}

// Stores the value under the key, replacing the value of an existing key.
// Grows the table first if it has reached its load factor.
func (t *Table[K, V]) Put(key K, val V) (err error) {
	h, err := t.Hash(key)

	if err != nil {
		return
	}

	if t.head.full() {
		if err = t.resize(); err != nil {
			return
		}
	}

	bucket := t.indexOf(h)
	f := t.chain(bucket)

	if e := f.find(key); e != nil {
		t.logf("bucket %d: updating value of existing key %v", bucket, key)
		e.SetValue(val)
		return
	}

	e, err := t.entries.alloc(key, val, h)

	if err != nil {
		return
	}

	if t.buckets.Get(bucket) != 0 {
		t.logf("bucket %d: chaining key %v in front of existing entries", bucket, key)
	} else {
		t.logf("bucket %d: new key %v", bucket, key)
	}

	t.link(bucket, e)
	t.head.used++

	return
}

// Returns the value stored under the key. A missing key yields the zero
// value with ok set to false.
func (t *Table[K, V]) Get(key K) (val V, ok bool, err error) {
	e, err := t.lookup(key)

	if err != nil || e == nil {
		return
	}

	return e.value, true, nil
}

func (t *Table[K, V]) ContainsKey(key K) (ok bool, err error) {
	e, err := t.lookup(key)
	return e != nil, err
}

// Snapshot of all entries, in the order of Iterate.
func (t *Table[K, V]) EntrySet() []*Entry[K, V] {
	entries := make([]*Entry[K, V], 0, t.head.used)
	iter := t.Iterate()

	for iter.Next() {
		entries = append(entries, iter.Entry())
	}

	return entries
}

func (t *Table[K, V]) Iterate() Iterator[K, V] {
	return Iterator[K, V]{
		table: t,
	}
}

func (t *Table[K, V]) lookup(key K) (e *Entry[K, V], err error) {
	h, err := t.Hash(key)

	if err != nil {
		return
	}

	f := t.chain(t.indexOf(h))
	return f.find(key), nil
}

func (t *Table[K, V]) indexOf(h uint64) int {
	return int(h & uint64(t.head.capacity-1))
}

func (t *Table[K, V]) chain(bucket int) finder[K, V] {
	return finder[K, V]{
		next: t.first(bucket),
	}
}

func (t *Table[K, V]) first(bucket int) *Entry[K, V] {
	return t.entryAt(t.buckets.Get(bucket))
}

func (t *Table[K, V]) entryAt(ref uint32) *Entry[K, V] {
	if ref == 0 {
		return nil
	}

	return t.entries.at(ref - 1)
}

// Makes the entry the new head of the bucket.
func (t *Table[K, V]) link(bucket int, e *Entry[K, V]) {
	e.setNext(t.first(bucket))
	t.buckets.Set(bucket, e.slot+1)
}

// Swaps in a bucket array grown by the growth factor, and relinks every
// entry into it. At MaxCapacity the table stops growing and chains get
// longer instead.
func (t *Table[K, V]) resize() (err error) {
	if t.head.capacity >= MaxCapacity {
		return
	}

	capacity := t.head.nextCapacity()
	buckets, err := mmarr.New[uint32](capacity)

	if err != nil {
		return fmt.Errorf("failed to grow to %d buckets: %w", capacity, err)
	}

	t.logf("resizing from %d to %d buckets", t.head.capacity, capacity)

	old := t.buckets
	used := t.head.used

	t.buckets = buckets
	t.head.capacity = capacity
	t.head.used = 0

	if !isPowerOfTwo(t.head.capacity) || t.buckets.Len() != t.head.capacity {
		panic(CapacityInvariantViolation{Capacity: t.head.capacity, Expected: used})
	}

	for bucket := 0; bucket < old.Len(); bucket++ {
		e := t.entryAt(old.Get(bucket))

		for e != nil {
			next := e.next
			t.rehash(e)
			e = next
		}
	}

	if t.head.used != used || t.head.used != t.entries.len() {
		panic(CapacityInvariantViolation{Capacity: t.head.capacity, Expected: used, Rehashed: t.head.used})
	}

	t.head.resizes++

	if err = old.Close(); err != nil {
		return fmt.Errorf("failed to release %d old buckets: %w", old.Len(), err)
	}

	return
}

// Places an existing entry into the current bucket array. Unlike Put, it
// never triggers a resize.
func (t *Table[K, V]) rehash(e *Entry[K, V]) {
	bucket := t.indexOf(e.hash)
	t.logf("rehashing key %v into bucket %d", e.key, bucket)
	t.link(bucket, e)
	t.head.used++
}

func (t *Table[K, V]) logf(format string, args ...any) {
	if t.log != nil {
		t.log.Printf(format, args...)
	}
}
