package chainmap

import (
	"fmt"
	"reflect"
)

type tableError string

var _ error = tableError("")

func (err tableError) Error() string {
	return string(err)
}

const (
	ErrInvalidCapacity     = tableError("capacity must not be negative")
	ErrInvalidLoadFactor   = tableError("load factor must be a finite number above zero")
	ErrInvalidGrowthFactor = tableError("growth factor must be a power of two, and at least 2")
	ErrTableFull           = tableError("no entry slots left")
)

// Returned when a key has no hash: its type neither implements Hasher nor
// is one of the built-in scalar kinds.
type HashError struct {
	Type reflect.Type
}

var _ error = (*HashError)(nil)

func (err *HashError) Error() string {
	if err.Type == nil {
		return "nil key can't be hashed"
	}

	return fmt.Sprintf("key of type %s can't be hashed: implement chainmap.Hasher", err.Type)
}

// Panic value for a bucket count that is not a power of two, or a rehash that
// lost or duplicated entries. Both are bugs in this package, never caused by input.
type CapacityInvariantViolation struct {
	Capacity int
	Expected int
	Rehashed int
}

var _ error = CapacityInvariantViolation{}

func (v CapacityInvariantViolation) Error() string {
	if !isPowerOfTwo(v.Capacity) {
		return fmt.Sprintf("capacity %d is not a power of two", v.Capacity)
	}

	return fmt.Sprintf("rehash into %d buckets placed %d entries, expected %d", v.Capacity, v.Rehashed, v.Expected)
}
