package mmarr

import (
	"errors"
	"testing"
)

func TestNewZeroed(t *testing.T) {
	arr, err := New[uint32](64)

	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		arr.Close()
	})

	if arr.Len() != 64 {
		t.Fatalf("expected length 64, got %d", arr.Len())
	}

	if arr.Size() < 64*4 {
		t.Errorf("expected at least %d bytes mapped, got %d", 64*4, arr.Size())
	}

	for i, v := range arr.Items() {
		if v != 0 {
			t.Fatalf("item %d is %d, expected 0", i, v)
		}
	}
}

func TestSetGet(t *testing.T) {
	arr, err := New[uint64](10)

	if err != nil {
		t.Fatal(err)
	}

	defer arr.Close()

	for i := 0; i < arr.Len(); i++ {
		arr.Set(i, uint64(i*i))
	}

	for i := 0; i < arr.Len(); i++ {
		if v := arr.Get(i); v != uint64(i*i) {
			t.Errorf("item %d: expected %d, got %d", i, i*i, v)
		}
	}

	if arr.ItemSize() != 8 {
		t.Errorf("expected item size 8, got %d", arr.ItemSize())
	}
}

func TestInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := New[uint32](length); !errors.Is(err, ErrLength) {
			t.Errorf("length %d: expected ErrLength, got %v", length, err)
		}
	}
}

func TestCloseTwice(t *testing.T) {
	arr, err := New[uint32](1)

	if err != nil {
		t.Fatal(err)
	}

	if err = arr.Close(); err != nil {
		t.Fatal(err)
	}

	if err = arr.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}

	if arr.Len() != 0 {
		t.Errorf("expected closed array to be empty, got %d", arr.Len())
	}
}
