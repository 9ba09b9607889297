// Package archive persists observed tip blocks and mining outcomes.
package archive

import (
	"context"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/batcher"
	"go.uber.org/zap"
)

// DefaultBlockBatch flushes every few tips and at least twice a minute.
var DefaultBlockBatch = batcher.Options{
	FlushSize:     16,
	FlushInterval: 30 * time.Second,
	RPS:           1,
}

// BlockArchiver buffers distinct tip blocks and writes them in batches.
type BlockArchiver struct {
	repo    BlockRepository
	network model.Network
	logger  *zap.Logger
	batcher *batcher.Batcher[model.Block]

	mu       sync.Mutex
	lastHash string
}

func NewBlockArchiver(repo BlockRepository, network model.Network, opts batcher.Options, logger *zap.Logger) *BlockArchiver {
	a := &BlockArchiver{
		repo:    repo,
		network: network,
		logger:  logger.Named("block_archiver"),
	}
	a.batcher = batcher.New[model.Block](a.logger.Named("batcher"), a.flush, opts)
	return a
}

// Start runs the flush loop until ctx is done or Stop is called.
func (a *BlockArchiver) Start(ctx context.Context) {
	a.batcher.Start(ctx)
}

// Stop writes whatever is still buffered.
func (a *BlockArchiver) Stop() {
	a.batcher.Stop()
}

// Archive queues block unless it is the tip queued last.
func (a *BlockArchiver) Archive(ctx context.Context, block model.Block) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if block.ID == a.lastHash {
		return nil
	}
	if err := a.batcher.Add(ctx, block); err != nil {
		return err
	}
	a.lastHash = block.ID
	return nil
}

func (a *BlockArchiver) flush(ctx context.Context, blocks []model.Block) error {
	if err := a.repo.InsertBlocks(ctx, a.network, blocks); err != nil {
		return err
	}
	a.logger.Debug("blocks archived", zap.Int("count", len(blocks)), zap.Uint64("last_height", blocks[len(blocks)-1].Height))
	return nil
}
