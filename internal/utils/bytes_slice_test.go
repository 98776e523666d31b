package utils

import "testing"

func TestBytesToSlice(t *testing.T) {
	b := make([]byte, 17)
	s := BytesToSlice[uint32](b)

	if len(s) != 4 {
		t.Fatalf("expected 4 items, got %d", len(s))
	}

	s[1] = 0xffffffff

	if b[4] != 0xff || b[7] != 0xff || b[8] != 0 {
		t.Errorf("write through slice did not land in backing bytes: %v", b)
	}
}

func TestBytesToSliceTooShort(t *testing.T) {
	if s := BytesToSlice[uint64](make([]byte, 7)); s != nil {
		t.Errorf("expected nil, got %v", s)
	}
}

func TestSizeOf(t *testing.T) {
	if SizeOf[uint16]() != 2 || SizeOf[uint32]() != 4 || SizeOf[uint64]() != 8 {
		t.Error("unexpected sizes")
	}
}
