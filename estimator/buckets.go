package estimator

// Buckets is the fixed geometric fee-rate histogram the models were trained
// against. Limits grow by a constant percentage from 1.0 up to an upper
// bound; every rate above the last limit lands in the final bucket.
type Buckets struct {
	limits []float64
}

// NewBuckets builds the bucket limits: starting from 1.0, each limit is the
// previous one scaled by 1+incrementPercent/100, stopping once the upper
// limit has been reached.
func NewBuckets(incrementPercent uint32, upperLimit float64) *Buckets {
	increment := 1.0 + float64(incrementPercent)/100.0
	var limits []float64
	for current := 1.0; current < upperLimit; {
		current *= increment
		limits = append(limits, current)
	}
	return &Buckets{limits: limits}
}

// Len returns the number of buckets.
func (b *Buckets) Len() int {
	return len(b.limits)
}

// Histogram counts each rate into the first bucket whose limit exceeds it.
// Rates beyond the last limit overflow into the last bucket.
func (b *Buckets) Histogram(rates []float64) []uint64 {
	counts := make([]uint64, len(b.limits))
	for _, rate := range rates {
		idx := len(b.limits) - 1
		for i, limit := range b.limits {
			if limit > rate {
				idx = i
				break
			}
		}
		counts[idx]++
	}
	return counts
}
