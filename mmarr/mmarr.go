package mmarr

import (
	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-chainmap/internal/utils"
)

// Initialize a new fixed-length array of unsigned integers, backed by an
// anonymous memory mapping. The mapping is never associated with a file and
// is released with Close. All items start as zero.
func New[T utils.Unsigned](length int) (arr *Array[T], err error) {
	if length <= 0 {
		return nil, ErrLength
	}

	arr = &Array[T]{
		itemSize: utils.SizeOf[T](),
	}

	if arr.data, err = mmap.MapRegion(nil, length*arr.itemSize, mmap.RDWR, mmap.ANON, 0); err != nil {
		return nil, err
	}

	arr.items = utils.BytesToSlice[T](arr.data)

	if len(arr.items) != length {
		_ = arr.data.Unmap()
		return nil, ErrMapSize
	}

	return
}

// Anonymously mapped array
type Array[T utils.Unsigned] struct {
	data     mmap.MMap
	items    []T
	itemSize int
}

func (arr *Array[T]) Close() (err error) {
	if arr.data == nil {
		return
	}

	if err = arr.data.Unmap(); err != nil {
		return
	}

	arr.data = nil
	arr.items = nil
	return
}

func (arr *Array[T]) Set(pos int, val T) {
	arr.items[pos] = val
}

func (arr *Array[T]) Get(pos int) T {
	return arr.items[pos]
}

func (arr *Array[T]) Len() int {
	return len(arr.items)
}

func (arr *Array[T]) ItemSize() int {
	return arr.itemSize
}

// Size of the mapping in bytes.
func (arr *Array[T]) Size() int {
	return len(arr.data)
}

// The items, aliasing the mapping. Must not be used after Close.
func (arr *Array[T]) Items() []T {
	return arr.items
}
