package model

import "github.com/btcsuite/btcd/btcutil"

// Priority buckets a transaction by fee rate.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	highPriorityFeeRate   = 50
	mediumPriorityFeeRate = 20
)

// Transaction is a transaction as served by the explorer API.
type Transaction struct {
	TxID     string         `json:"txid"`
	Version  int32          `json:"version"`
	LockTime uint32         `json:"locktime"`
	Vin      []TxInput      `json:"vin"`
	Vout     []TxOutput     `json:"vout"`
	Size     uint32         `json:"size"`
	Weight   uint32         `json:"weight"`
	Fee      btcutil.Amount `json:"fee"`
	Status   TxStatus       `json:"status"`
}

// TxInput references a previous output, resolved when the explorer knows it.
type TxInput struct {
	TxID    string    `json:"txid"`
	Vout    uint32    `json:"vout"`
	Prevout *TxOutput `json:"prevout,omitempty"`
}

// TxOutput is a single transaction output.
type TxOutput struct {
	ScriptPubKey        string         `json:"scriptpubkey"`
	ScriptPubKeyAsm     string         `json:"scriptpubkey_asm"`
	ScriptPubKeyType    string         `json:"scriptpubkey_type"`
	ScriptPubKeyAddress string         `json:"scriptpubkey_address,omitempty"`
	Value               btcutil.Amount `json:"value"`
}

// TxStatus is the confirmation status of a transaction.
type TxStatus struct {
	Confirmed   bool   `json:"confirmed"`
	BlockHeight uint64 `json:"block_height,omitempty"`
	BlockHash   string `json:"block_hash,omitempty"`
	BlockTime   int64  `json:"block_time,omitempty"`
}

// VSize returns the virtual size in vbytes. Size is used when the weight is unknown.
func (t Transaction) VSize() uint32 {
	if t.Weight == 0 {
		return t.Size
	}
	return (t.Weight + 3) / 4
}

// FeeRate returns the fee in satoshi per virtual byte.
func (t Transaction) FeeRate() float64 {
	vsize := t.VSize()
	if vsize == 0 {
		return 0
	}
	return float64(t.Fee) / float64(vsize)
}

// TotalOutput sums the values of all outputs.
func (t Transaction) TotalOutput() btcutil.Amount {
	var total btcutil.Amount
	for _, out := range t.Vout {
		total += out.Value
	}
	return total
}

// Priority classifies the transaction by its current fee rate.
func (t Transaction) Priority() Priority {
	rate := t.FeeRate()
	switch {
	case rate > highPriorityFeeRate:
		return PriorityHigh
	case rate > mediumPriorityFeeRate:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
