// Package model defines the explorer domain types shared by the dashboard components.
package model

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

// Block is a block as served by the explorer API. It is never mutated after decoding.
type Block struct {
	ID                string  `json:"id"`
	Height            uint64  `json:"height"`
	Version           uint32  `json:"version"`
	Timestamp         int64   `json:"timestamp"`
	TxCount           uint32  `json:"tx_count"`
	Size              uint32  `json:"size"`
	Weight            uint32  `json:"weight"`
	MerkleRoot        string  `json:"merkle_root"`
	PreviousBlockHash string  `json:"previousblockhash"`
	MedianTime        int64   `json:"mediantime"`
	Nonce             uint32  `json:"nonce"`
	Bits              uint32  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
}

// Time returns the block timestamp in UTC.
func (b Block) Time() time.Time {
	return time.Unix(b.Timestamp, 0).UTC()
}

// Target expands the compact difficulty bits into the full proof-of-work target.
func (b Block) Target() *big.Int {
	return blockchain.CompactToBig(b.Bits)
}
