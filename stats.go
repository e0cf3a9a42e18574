package chainmap

// Stats is a point-in-time snapshot of the table shape.
type Stats struct {
	Size         int
	Capacity     int
	UsedBuckets  int
	MaxBucketLen int
	LoadFactor   float64
}

// Stats returns a snapshot of the table shape.
func (cm *ChainMap[K, V]) Stats() Stats {
	return cm.stats()
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		LoadFactor: float64(t.size) / float64(t.capacity),
	}

	for _, b := range t.buckets {
		if len(b) == 0 {
			continue
		}

		s.UsedBuckets++
		s.MaxBucketLen = max(s.MaxBucketLen, len(b))
	}

	return s
}
