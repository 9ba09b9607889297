package chainstate

import (
	"math"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

// RecentBlocksLimit is how many recent blocks are retained.
const RecentBlocksLimit = 10

// blockGaps returns successive timestamp differences of a newest-first list.
func blockGaps(blocks []model.Block) []int64 {
	if len(blocks) < 2 {
		return nil
	}
	gaps := make([]int64, 0, len(blocks)-1)
	for i := 0; i < len(blocks)-1; i++ {
		gaps = append(gaps, blocks[i].Timestamp-blocks[i+1].Timestamp)
	}
	return gaps
}

// ComputeNetworkStats derives statistics from the held chain state and the
// materialized pending transactions. It returns nil when there is no current
// block or no transaction, which is distinct from a zero reading.
func ComputeNetworkStats(latest *model.Block, recent []model.Block, txs []model.Transaction, pendingCount int) *model.NetworkStats {
	if latest == nil || len(txs) == 0 {
		return nil
	}

	stats := &model.NetworkStats{
		Difficulty:   latest.Difficulty,
		PendingCount: pendingCount,
	}

	if gaps := blockGaps(recent); len(gaps) > 0 {
		var sum int64
		for _, g := range gaps {
			sum += g
		}
		stats.AverageBlockTime = math.Round(float64(sum)/float64(len(gaps))*100) / 100
		stats.BlockTimeSamples = len(gaps)
	}

	var fees int64
	for _, tx := range txs {
		fees += int64(tx.Fee)
	}
	stats.AverageFee = float64(fees) / float64(len(txs))

	return stats
}
