// Package blockscan derives estimator inputs from a connected window of
// blocks: the fee rates of every transaction whose inputs resolve inside
// the window, and the timestamp of the earliest block carrying more than
// one transaction.
package blockscan

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/feemodel-ml/feemodel/internal/parallel"
)

// WindowSize is the number of trailing connected blocks a scan covers.
const WindowSize = 10

var (
	// ErrUnconnectedBlocks rejects a window whose headers do not chain.
	ErrUnconnectedBlocks = errors.New("blockscan: blocks are not a connected sequence")

	// ErrNoTimestamp reports a window with no block of more than one
	// transaction, which leaves the last-block timestamp undefined.
	ErrNoTimestamp = errors.New("blockscan: no block in the window carries more than one transaction")
)

// ProcessBlocks scans a connected window of WindowSize blocks and returns
// the fee rates (sat/vB) of the transactions whose inputs all resolve
// within the window, plus the last-block timestamp for the estimator.
func ProcessBlocks(blocks []*wire.MsgBlock) ([]float64, uint32, error) {
	if len(blocks) != WindowSize {
		return nil, 0, fmt.Errorf("blockscan: expected a window of %d blocks, got %d", WindowSize, len(blocks))
	}
	w, err := newWindow(blocks)
	if err != nil {
		return nil, 0, err
	}
	return w.feeRates(), w.lastBlockTS, nil
}

// window indexes the transactions of a connected block sequence.
type window struct {
	txs          map[chainhash.Hash]*wire.MsgTx
	outputValues map[chainhash.Hash][]int64
	lastBlockTS  uint32
}

func newWindow(blocks []*wire.MsgBlock) (*window, error) {
	prev := blocks[0].BlockHash()
	for _, b := range blocks[1:] {
		if b.Header.PrevBlock != prev {
			return nil, ErrUnconnectedBlocks
		}
		prev = b.BlockHash()
	}

	txs := make(map[chainhash.Hash]*wire.MsgTx)
	var lastBlockTS uint32
	found := false
	for _, b := range blocks {
		if !found && len(b.Transactions) > 1 {
			lastBlockTS = uint32(b.Header.Timestamp.Unix())
			found = true
		}
		for _, tx := range b.Transactions {
			txs[tx.TxHash()] = tx
		}
	}
	if !found {
		return nil, ErrNoTimestamp
	}

	outputValues := make(map[chainhash.Hash][]int64, len(txs))
	for hash, tx := range txs {
		values := make([]int64, len(tx.TxOut))
		for i, out := range tx.TxOut {
			values[i] = out.Value
		}
		outputValues[hash] = values
	}

	return &window{txs: txs, outputValues: outputValues, lastBlockTS: lastBlockTS}, nil
}

// feeRate returns the fee rate of a transaction in sat/vB, or false when
// any input spends an output outside the window so the fee is unknown.
func (w *window) feeRate(tx *wire.MsgTx) (float64, bool) {
	fee, ok := w.absoluteFee(tx)
	if !ok {
		return 0, false
	}
	weight := int64(tx.SerializeSizeStripped())*3 + int64(tx.SerializeSize())
	return float64(fee) / (float64(weight) / 4.0), true
}

func (w *window) feeRates() []float64 {
	txs := make([]*wire.MsgTx, 0, len(w.txs))
	for _, tx := range w.txs {
		txs = append(txs, tx)
	}

	type result struct {
		rate float64
		ok   bool
	}
	results := make([]result, len(txs))
	parallel.For(len(txs), func(i int) {
		results[i].rate, results[i].ok = w.feeRate(txs[i])
	}, parallel.DefaultConfig())

	rates := make([]float64, 0, len(results))
	for _, r := range results {
		if r.ok {
			rates = append(rates, r.rate)
		}
	}
	return rates
}

func (w *window) absoluteFee(tx *wire.MsgTx) (int64, bool) {
	var sumOutputs int64
	for _, out := range tx.TxOut {
		sumOutputs += out.Value
	}
	var sumInputs int64
	for _, in := range tx.TxIn {
		values, ok := w.outputValues[in.PreviousOutPoint.Hash]
		if !ok || int(in.PreviousOutPoint.Index) >= len(values) {
			return 0, false
		}
		sumInputs += values[in.PreviousOutPoint.Index]
	}
	return sumInputs - sumOutputs, true
}
