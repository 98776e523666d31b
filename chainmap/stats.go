package chainmap

type Stats struct {
	Len             int
	Cap             int
	LoadFactor      float64
	GrowthFactor    int
	Resizes         int
	UsedBuckets     int
	CollidedBuckets int
	LongestChain    int
}

func (t *Table[K, V]) Stats() (s Stats) {
	s = Stats{
		Len:          t.head.used,
		Cap:          t.head.capacity,
		LoadFactor:   t.head.loadFactor,
		GrowthFactor: t.head.growthFactor,
		Resizes:      t.head.resizes,
	}

	for bucket := 0; bucket < t.head.capacity; bucket++ {
		n := t.ChainLen(bucket)

		if n == 0 {
			continue
		}

		s.UsedBuckets++

		if n > 1 {
			s.CollidedBuckets++
		}

		if n > s.LongestChain {
			s.LongestChain = n
		}
	}

	return
}

// Number of entries in a bucket. Zero for buckets out of range.
func (t *Table[K, V]) ChainLen(bucket int) (n int) {
	if bucket < 0 || bucket >= t.head.capacity {
		return
	}

	f := t.chain(bucket)

	for f.Next() {
		n++
	}

	return
}
