package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketLimits(t *testing.T) {
	b := NewBuckets(50, 500.0)
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, 1.5, b.limits[0])
	assert.Equal(t, 2.25, b.limits[1])
	// The loop stops after the first limit at or beyond the upper bound,
	// so the last bucket reaches past it.
	last := b.limits[len(b.limits)-1]
	assert.Greater(t, last, 500.0)
	for i := 1; i < len(b.limits); i++ {
		assert.Greater(t, b.limits[i], b.limits[i-1])
	}
}

func TestHistogram(t *testing.T) {
	b := NewBuckets(50, 500.0)
	rates := []float64{
		0.5,    // below the first limit: bucket 0
		1.2,    // bucket 0
		1.6,    // bucket 1 (2.25 > 1.6)
		3.3,    // bucket 2 (3.375 > 3.3)
		200.0,  // bucket 13 (291.93 > 200)
		500.0,  // bucket 15 (656.84 > 500)
		1000.0, // beyond every limit: overflow into bucket 15
	}
	counts := b.Histogram(rates)
	assert.Len(t, counts, 16)
	assert.Equal(t, uint64(2), counts[0])
	assert.Equal(t, uint64(1), counts[1])
	assert.Equal(t, uint64(1), counts[2])
	assert.Equal(t, uint64(1), counts[13])
	assert.Equal(t, uint64(2), counts[15])

	var total uint64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, uint64(len(rates)), total)
}

func TestHistogramEmpty(t *testing.T) {
	b := NewBuckets(50, 500.0)
	counts := b.Histogram(nil)
	assert.Len(t, counts, 16)
	for i, c := range counts {
		assert.Zero(t, c, "bucket %d", i)
	}
}
