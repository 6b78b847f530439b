// Package estimator is the fee estimation entry point: it holds the two
// compiled regression models, builds the feature vector for a request and
// routes it by confirmation target.
//
// Example:
//
//	fm := estimator.New()
//	rate, err := fm.Estimate(2, feeRates, lastBlockTS)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.2f sat/vB\n", rate)
//
// feeRates are the observed fee rates (sat/vB) of transactions in the last
// ten blocks whose inputs resolve within that window; lastBlockTS is the
// timestamp of the earliest of those blocks carrying more than one
// transaction. The blockscan package derives both from raw blocks.
package estimator

import (
	"fmt"
	"time"

	"github.com/feemodel-ml/feemodel/internal/model"
	"github.com/feemodel-ml/feemodel/models"
)

const (
	// lowTargetMax is the highest confirmation target served by the low
	// model; everything above routes to the high model.
	lowTargetMax = 2

	// Histogram parameters the shipped models were trained with.
	bucketIncrementPercent = 50
	bucketUpperLimit       = 500.0

	// MinFeeRate is the domain floor in sat/vB. Training penalizes
	// estimates below it but cannot rule them out, and clamping inside
	// the activation destabilizes training, so the floor is applied
	// here on the raw regression value.
	MinFeeRate float32 = 1.0
)

// FeeModel estimates transaction fee rates from a pair of compiled models:
// one trained for near targets, one for far targets. It is immutable and
// safe for concurrent use.
type FeeModel struct {
	low     *model.Model
	high    *model.Model
	buckets *Buckets
}

// New returns a FeeModel backed by the models shipped with the library.
func New() *FeeModel {
	return NewWithModels(models.Low(), models.High())
}

// NewWithModels returns a FeeModel over a custom model pair. Both models
// must share the shipped models' feature list.
func NewWithModels(low, high *model.Model) *FeeModel {
	return &FeeModel{
		low:     low,
		high:    high,
		buckets: NewBuckets(bucketIncrementPercent, bucketUpperLimit),
	}
}

// Estimate returns the estimated fee rate in sat/vB for confirmation within
// target blocks, evaluated at the current time.
func (f *FeeModel) Estimate(target uint16, feeRates []float64, lastBlockTS uint32) (float32, error) {
	return f.EstimateAt(target, uint32(time.Now().Unix()), feeRates, lastBlockTS)
}

// EstimateAt is Estimate evaluated at an explicit unix timestamp.
func (f *FeeModel) EstimateAt(target uint16, ts uint32, feeRates []float64, lastBlockTS uint32) (float32, error) {
	return f.EstimateWithBuckets(target, ts, f.buckets.Histogram(feeRates), lastBlockTS)
}

// EstimateWithBuckets estimates from a pre-built fee-rate histogram whose
// bucket limits must match the shipped models' training buckets.
func (f *FeeModel) EstimateWithBuckets(target uint16, ts uint32, buckets []uint64, lastBlockTS uint32) (float32, error) {
	input := make(map[string]float32, 4+len(buckets))
	input["confirms_in"] = float32(target)

	utc := time.Unix(int64(ts), 0).UTC()
	input["day_of_week"] = float32((int(utc.Weekday()) + 6) % 7) // Monday = 0
	input["hour"] = float32(utc.Hour())
	input["delta_last"] = float32(int64(ts) - int64(lastBlockTS))

	for i, count := range buckets {
		input[fmt.Sprintf("b%d", i)] = float32(count)
	}

	m := f.high
	if target <= lowTargetMax {
		m = f.low
	}
	raw, err := m.NormPredict(input)
	if err != nil {
		return 0, err
	}
	if raw < MinFeeRate {
		return MinFeeRate, nil
	}
	return raw, nil
}
