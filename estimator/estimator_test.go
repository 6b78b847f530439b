package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feemodel-ml/feemodel/internal/matrix"
	"github.com/feemodel-ml/feemodel/internal/model"
)

// Snapshot of the histogram of a busy ten-block window, matching the field
// layout the shipped models were trained on.
var testBuckets = []uint64{2, 0, 0, 2, 5, 6, 14, 20, 95, 394, 4449, 1954, 282, 193, 33, 19}

const testTS = uint32(1613939479)

func TestFasterConfirmationCostsMore(t *testing.T) {
	fm := New()
	one, err := fm.EstimateWithBuckets(1, testTS, testBuckets, testTS-300)
	require.NoError(t, err)
	two, err := fm.EstimateWithBuckets(2, testTS, testBuckets, testTS-300)
	require.NoError(t, err)
	assert.Greater(t, one, two, "1 block (%v) must cost more than 2 (%v)", one, two)
}

func TestEstimateKnownValues(t *testing.T) {
	fm := New()
	one, err := fm.EstimateWithBuckets(1, testTS, testBuckets, testTS-300)
	require.NoError(t, err)
	assert.InDelta(t, 53.09117, one, 1e-3)

	two, err := fm.EstimateWithBuckets(2, testTS, testBuckets, testTS-300)
	require.NoError(t, err)
	assert.InDelta(t, 52.048878, two, 1e-3)

	three, err := fm.EstimateWithBuckets(3, testTS, testBuckets, testTS-300)
	require.NoError(t, err)
	assert.InDelta(t, 38.046898, three, 1e-3)
}

func TestRoutingByTarget(t *testing.T) {
	fm := New()
	// Targets at or below 2 hit the low model, above it the high model;
	// the jump between the two regimes is visible in the output.
	two, err := fm.EstimateWithBuckets(2, testTS, testBuckets, testTS-300)
	require.NoError(t, err)
	three, err := fm.EstimateWithBuckets(3, testTS, testBuckets, testTS-300)
	require.NoError(t, err)
	assert.Greater(t, two, three)
	assert.Greater(t, two-three, float32(5), "model switch between targets 2 and 3")
}

func TestEstimateAtBuildsHistogram(t *testing.T) {
	fm := New()
	rates := []float64{1.1, 1.2, 4.5, 4.5, 22.3, 180.0, 950.0}

	viaRates, err := fm.EstimateAt(2, testTS, rates, testTS-300)
	require.NoError(t, err)
	viaBuckets, err := fm.EstimateWithBuckets(2, testTS, fm.buckets.Histogram(rates), testTS-300)
	require.NoError(t, err)
	assert.Equal(t, viaBuckets, viaRates)
}

// constModel returns a single-field model whose output is scale*confirms_in.
func constModel(t *testing.T, scale float32) *model.Model {
	t.Helper()
	one := func(vals []float32, w, h matrix.Dim) *matrix.Matrix {
		m, err := matrix.FromBuffer(vals, w, h)
		require.NoError(t, err)
		return m
	}
	return model.New(model.Params{
		Mean:     map[string]float32{"confirms_in": 0},
		Std:      map[string]float32{"confirms_in": 1},
		Fields:   []string{"confirms_in"},
		Alpha:    1,
		L0Kernel: one([]float32{scale}, 1, 1),
		L0Bias:   one([]float32{0}, 1, 1),
		L1Kernel: one([]float32{1}, 1, 1),
		L1Bias:   one([]float32{0}, 1, 1),
		L2Kernel: one([]float32{1}, 1, 1),
		L2Bias:   one([]float32{0}, 1, 1),
	})
}

func TestFloorAppliedOutsideEvaluator(t *testing.T) {
	// A model driven below the domain floor: the evaluator reports the raw
	// value, the facade clamps it to MinFeeRate.
	m := constModel(t, -3)
	raw, err := m.NormPredict(map[string]float32{"confirms_in": 2})
	require.NoError(t, err)
	assert.Equal(t, float32(-6), raw)

	fm := NewWithModels(m, m)
	got, err := fm.EstimateAt(2, testTS, nil, testTS-300)
	require.NoError(t, err)
	assert.Equal(t, MinFeeRate, got)
}

func TestEstimateUsesCurrentTime(t *testing.T) {
	fm := NewWithModels(constModel(t, 2), constModel(t, 2))
	// The constant model ignores every time-derived feature, so Estimate
	// and EstimateAt agree regardless of the clock.
	now, err := fm.Estimate(3, nil, 0)
	require.NoError(t, err)
	pinned, err := fm.EstimateAt(3, testTS, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, pinned, now)
}
