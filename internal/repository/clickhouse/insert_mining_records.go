package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

const insertMiningRecordsQuery = `
INSERT INTO mining_outcomes (
	network,
	session_id,
	started_at,
	selected,
	succeeded,
	iterations,
	elapsed_ms,
	hash_rate,
	nonce,
	hash
) VALUES`

// InsertMiningRecords stores terminal mining outcomes.
func (r *Repository) InsertMiningRecords(ctx context.Context, network model.Network, records []model.MiningRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_mining_records", network, err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertMiningRecordsQuery)
	if err != nil {
		return fmt.Errorf("prepare mining records batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			string(network),
			rec.SessionID,
			rec.StartedAt,
			rec.Selected,
			rec.Succeeded,
			rec.Iterations,
			rec.Elapsed.Milliseconds(),
			rec.HashRate,
			rec.Nonce,
			rec.Hash,
		); err != nil {
			return fmt.Errorf("append mining record %s: %w", rec.SessionID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert mining records: %w", err)
	}
	return nil
}
