package chainmap

type header struct {
	capacity     int
	loadFactor   float64
	growthFactor int
	used         int
	resizes      int
}

func (h header) threshold() float64 {
	return float64(h.capacity) * h.loadFactor
}

// Whether the next insert must be preceded by a resize.
func (h header) full() bool {
	return float64(h.used) >= h.threshold()
}

func (h header) nextCapacity() int {
	if h.capacity >= MaxCapacity/h.growthFactor {
		return MaxCapacity
	}

	return h.capacity * h.growthFactor
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
