package blockscan

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fundingTx builds a transaction whose single input is unresolvable inside
// the window, so it contributes outputs but never a fee rate itself.
func fundingTx(value int64, marker uint32) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	var h chainhash.Hash
	h[0] = 0xff
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&h, marker), nil, nil))
	tx.AddTxOut(wire.NewTxOut(value, nil))
	tx.LockTime = marker
	return tx
}

func spendTx(prev *wire.MsgTx, index uint32, value int64) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	prevHash := prev.TxHash()
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, index), nil, nil))
	tx.AddTxOut(wire.NewTxOut(value, nil))
	return tx
}

// makeChain assembles a connected window; block i carries txs[i].
func makeChain(txs [][]*wire.MsgTx, base time.Time) []*wire.MsgBlock {
	blocks := make([]*wire.MsgBlock, len(txs))
	var prev chainhash.Hash
	for i := range txs {
		b := wire.NewMsgBlock(wire.NewBlockHeader(1, &prev, &chainhash.Hash{}, 0, uint32(i)))
		b.Header.Timestamp = base.Add(time.Duration(i) * 10 * time.Minute)
		for _, tx := range txs[i] {
			b.AddTransaction(tx)
		}
		prev = b.BlockHash()
		blocks[i] = b
	}
	return blocks
}

func singleTxWindow(base time.Time) [][]*wire.MsgTx {
	txs := make([][]*wire.MsgTx, WindowSize)
	for i := range txs {
		txs[i] = []*wire.MsgTx{fundingTx(50_000, uint32(i))}
	}
	return txs
}

func TestProcessBlocksRejectsWrongWindowLength(t *testing.T) {
	base := time.Unix(1613939479, 0).UTC()
	blocks := makeChain(singleTxWindow(base), base)

	_, _, err := ProcessBlocks(blocks[:WindowSize-1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a window of 10 blocks")
}

func TestProcessBlocksRejectsUnconnectedBlocks(t *testing.T) {
	base := time.Unix(1613939479, 0).UTC()
	txs := singleTxWindow(base)
	txs[0] = append(txs[0], spendTx(txs[0][0], 0, 40_000))
	blocks := makeChain(txs, base)
	blocks[4].Header.PrevBlock = chainhash.Hash{0xde, 0xad}

	_, _, err := ProcessBlocks(blocks)
	require.ErrorIs(t, err, ErrUnconnectedBlocks)
}

func TestProcessBlocksRequiresMultiTxBlock(t *testing.T) {
	base := time.Unix(1613939479, 0).UTC()
	blocks := makeChain(singleTxWindow(base), base)

	_, _, err := ProcessBlocks(blocks)
	require.ErrorIs(t, err, ErrNoTimestamp)
}

func TestProcessBlocksFeeRates(t *testing.T) {
	base := time.Unix(1613939479, 0).UTC()
	txs := singleTxWindow(base)
	funding := txs[2][0]
	spend := spendTx(funding, 0, 40_000)
	txs[5] = append(txs[5], spend)
	blocks := makeChain(txs, base)

	rates, lastTS, err := ProcessBlocks(blocks)
	require.NoError(t, err)

	// Only the spend has all of its inputs resolvable in the window.
	require.Len(t, rates, 1)
	wantRate := 10_000.0 / float64(spend.SerializeSize())
	assert.InDelta(t, wantRate, rates[0], 1e-9)
	assert.Greater(t, rates[0], 100.0)

	// Earliest block with more than one transaction is block 5.
	assert.Equal(t, uint32(blocks[5].Header.Timestamp.Unix()), lastTS)
}

func TestProcessBlocksSkipsPartiallyResolvableTx(t *testing.T) {
	base := time.Unix(1613939479, 0).UTC()
	txs := singleTxWindow(base)
	funding := txs[1][0]
	mixed := spendTx(funding, 0, 30_000)
	var outside chainhash.Hash
	outside[31] = 0x01
	mixed.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&outside, 0), nil, nil))
	txs[7] = append(txs[7], mixed)
	blocks := makeChain(txs, base)

	rates, _, err := ProcessBlocks(blocks)
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestProcessBlocksTimestampFromEarliestMultiTxBlock(t *testing.T) {
	base := time.Unix(1613939479, 0).UTC()
	txs := singleTxWindow(base)
	txs[3] = append(txs[3], spendTx(txs[3][0], 0, 20_000))
	txs[8] = append(txs[8], spendTx(txs[8][0], 0, 20_000))
	blocks := makeChain(txs, base)

	_, lastTS, err := ProcessBlocks(blocks)
	require.NoError(t, err)
	assert.Equal(t, uint32(blocks[3].Header.Timestamp.Unix()), lastTS)
}
