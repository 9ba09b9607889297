package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

const insertBlocksQuery = `
INSERT INTO dashboard_blocks (
	network,
	height,
	hash,
	previous_hash,
	timestamp,
	version,
	merkle_root,
	bits,
	nonce,
	difficulty,
	size,
	weight,
	tx_count
) VALUES`

// InsertBlocks stores observed tip blocks.
func (r *Repository) InsertBlocks(ctx context.Context, network model.Network, blocks []model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_blocks", network, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			string(network),
			block.Height,
			block.ID,
			block.PreviousBlockHash,
			block.Time(),
			block.Version,
			block.MerkleRoot,
			block.Bits,
			block.Nonce,
			block.Difficulty,
			block.Size,
			block.Weight,
			block.TxCount,
		); err != nil {
			return fmt.Errorf("append block %s: %w", block.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
