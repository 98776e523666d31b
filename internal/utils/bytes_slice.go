package utils

import (
	"unsafe"
)

// Reinterprets a byte slice as a slice of T. The byte slice must be aligned
// for T, which holds for anything returned by mmap. Trailing bytes that don't
// fill a whole T are ignored.
func BytesToSlice[T Unsigned](b []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))

	if len(b) < size {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/size)
}

func SizeOf[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
