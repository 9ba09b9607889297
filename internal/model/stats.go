package model

import "time"

// NetworkStats is derived from the current block, the recent blocks and the
// materialized pending transactions. A nil *NetworkStats means unavailable.
type NetworkStats struct {
	Difficulty float64
	// AverageBlockTime is in seconds and only meaningful when BlockTimeSamples > 0.
	AverageBlockTime float64
	BlockTimeSamples int
	// AverageFee is in satoshi over every materialized pending transaction.
	AverageFee   float64
	PendingCount int
}

// MiningRecord is the archived form of a terminal mining outcome.
type MiningRecord struct {
	SessionID  string
	StartedAt  time.Time
	Selected   uint32
	Succeeded  bool
	Iterations uint64
	Elapsed    time.Duration
	HashRate   float64
	Nonce      *uint32
	Hash       string
}
