package chainmap

import (
	"log"
	"math"
	"math/bits"
)

type options struct {
	capacity     int
	loadFactor   float64
	growthFactor int
	logger       *log.Logger
}

type Option func(*options)

// Initial number of buckets. Rounded up to the next power of two, and capped
// at MaxCapacity. Zero means DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// Fraction of the capacity that may be filled before the table grows.
func WithLoadFactor(loadFactor float64) Option {
	return func(o *options) {
		o.loadFactor = loadFactor
	}
}

// Multiplier applied to the capacity on every resize.
func WithGrowthFactor(growthFactor int) Option {
	return func(o *options) {
		o.growthFactor = growthFactor
	}
}

// Logs bucket placement on every put, and every resize.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{
		capacity:     DefaultCapacity,
		loadFactor:   DefaultLoadFactor,
		growthFactor: DefaultGrowthFactor,
	}
}

func (o *options) validate() error {
	if o.capacity < 0 {
		return ErrInvalidCapacity
	}

	if math.IsNaN(o.loadFactor) || math.IsInf(o.loadFactor, 0) || o.loadFactor <= 0 {
		return ErrInvalidLoadFactor
	}

	if o.growthFactor < 2 || !isPowerOfTwo(o.growthFactor) {
		return ErrInvalidGrowthFactor
	}

	o.capacity = roundCapacity(o.capacity)
	return nil
}

func roundCapacity(capacity int) int {
	if capacity == 0 {
		return DefaultCapacity
	}

	if capacity >= MaxCapacity {
		return MaxCapacity
	}

	return 1 << bits.Len(uint(capacity-1))
}
