// Package chainstate holds the latest block, the recent blocks and the derived
// network statistics shown by the dashboard.
package chainstate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/zap"
)

var (
	ErrLatestBlockUnavailable  = errors.New("latest block load failed")
	ErrRecentBlocksUnavailable = errors.New("recent blocks load failed")
	ErrBlockNotFound           = errors.New("block not found")
	ErrEmptyQuery              = errors.New("empty search query")
)

// Snapshot is a copy of everything the store holds.
type Snapshot struct {
	Latest          *model.Block
	LatestErr       error
	LatestUpdatedAt time.Time

	Recent    []model.Block
	RecentErr error

	Stats *model.NetworkStats

	SearchQuery string
	Searched    *model.Block
	SearchErr   error
}

// Store keeps chain state fetched from the explorer.
//
// The mutex only guards field access and is never held across a fetch, so
// overlapping refreshes both run and the last one to finish wins.
type Store struct {
	gateway Gateway
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time

	mu              sync.Mutex
	latest          *model.Block
	latestErr       error
	latestUpdatedAt time.Time
	recent          []model.Block
	recentErr       error
	stats           *model.NetworkStats
	searchQuery     string
	searched        *model.Block
	searchErr       error
}

// NewStore constructs a Store.
func NewStore(gateway Gateway, metrics Metrics, logger *zap.Logger) *Store {
	return &Store{
		gateway: gateway,
		metrics: metrics,
		logger:  logger.Named("chainstate"),
		now:     time.Now,
	}
}

// RefreshLatestBlock resolves the tip hash and then fetches that block. On
// failure the held block is kept and ErrLatestBlockUnavailable is recorded.
func (s *Store) RefreshLatestBlock(ctx context.Context) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRefresh("latest_block", err, started)
	}()

	block, err = s.fetchTip(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrLatestBlockUnavailable, err)
		s.logger.Warn("latest block not refreshed", zap.Error(err))

		s.mu.Lock()
		s.latestErr = err
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.latest = block
	s.latestErr = nil
	s.latestUpdatedAt = s.now()
	s.mu.Unlock()

	s.metrics.SetTipHeight(block.Height)
	s.logger.Debug("latest block refreshed", zap.Uint64("height", block.Height), zap.String("hash", block.ID))
	return block, nil
}

func (s *Store) fetchTip(ctx context.Context) (*model.Block, error) {
	hash, err := s.gateway.TipHash(ctx)
	if err != nil {
		return nil, fmt.Errorf("tip hash: %w", err)
	}
	block, err := s.gateway.Block(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", hash, err)
	}
	return block, nil
}

// RefreshRecentBlocks fetches the newest blocks and retains the first
// RecentBlocksLimit of them. On failure the previous list is kept.
func (s *Store) RefreshRecentBlocks(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRefresh("recent_blocks", err, started)
	}()

	blocks, err := s.gateway.RecentBlocks(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrRecentBlocksUnavailable, err)
		s.logger.Warn("recent blocks not refreshed", zap.Error(err))

		s.mu.Lock()
		s.recentErr = err
		s.mu.Unlock()
		return err
	}

	if len(blocks) > RecentBlocksLimit {
		blocks = blocks[:RecentBlocksLimit]
	}
	retained := make([]model.Block, len(blocks))
	copy(retained, blocks)

	s.mu.Lock()
	s.recent = retained
	s.recentErr = nil
	s.mu.Unlock()
	return nil
}

// RefreshNetworkStats recomputes the statistics from the held blocks and txs.
// It performs no I/O.
func (s *Store) RefreshNetworkStats(txs []model.Transaction, pendingCount int) *model.NetworkStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = ComputeNetworkStats(s.latest, s.recent, txs, pendingCount)
	return s.stats
}

// SearchBlock looks a block up by height when query is all digits and by hash
// otherwise. The result lands in the searched slot; the latest block is untouched.
func (s *Store) SearchBlock(ctx context.Context, query string) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRefresh("search", err, started)
	}()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	block, err = s.lookup(ctx, query)

	s.mu.Lock()
	s.searchQuery = query
	s.searched = block
	s.searchErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Debug("block search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return block, nil
}

func (s *Store) lookup(ctx context.Context, query string) (*model.Block, error) {
	hash := query
	if isDigits(query) {
		height, err := strconv.ParseUint(query, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: height %s: %w", ErrBlockNotFound, query, err)
		}
		hash, err = s.gateway.BlockHash(ctx, height)
		if err != nil {
			return nil, fmt.Errorf("%w: height %d: %w", ErrBlockNotFound, height, err)
		}
	}

	block, err := s.gateway.Block(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: hash %s: %w", ErrBlockNotFound, hash, err)
	}
	return block, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Latest returns the held latest block or nil.
func (s *Store) Latest() *model.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Snapshot returns a copy of the held state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]model.Block, len(s.recent))
	copy(recent, s.recent)

	var stats *model.NetworkStats
	if s.stats != nil {
		cp := *s.stats
		stats = &cp
	}

	return Snapshot{
		Latest:          s.latest,
		LatestErr:       s.latestErr,
		LatestUpdatedAt: s.latestUpdatedAt,
		Recent:          recent,
		RecentErr:       s.recentErr,
		Stats:           stats,
		SearchQuery:     s.searchQuery,
		Searched:        s.searched,
		SearchErr:       s.searchErr,
	}
}
