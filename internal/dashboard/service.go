// Package dashboard drives one dashboard session: the periodic refresh cycle,
// the transaction selection and the user intents.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mempool"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mining"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultRefreshInterval = 30 * time.Second

// ErrUnknownTransaction is returned when selecting a transaction that is not materialized.
var ErrUnknownTransaction = errors.New("transaction not loaded")

// View is everything a renderer needs for one frame.
type View struct {
	Chain     chainstate.Snapshot
	Mempool   mempool.View
	Selection []string
	Mining    mining.Status
}

// Service owns the state of a single dashboard session.
type Service struct {
	chain       ChainStore
	pool        Mempool
	miner       Miner
	archive     BlockArchive
	logger      *zap.Logger
	interval    time.Duration
	sleep       func(context.Context, time.Duration) error
	blockSignal <-chan struct{}

	mu        sync.Mutex
	runCtx    context.Context
	selected  []string
	selectSet map[string]struct{}
}

// Option customises a Service.
type Option func(*Service)

// WithBlockArchive archives every refreshed latest block.
func WithBlockArchive(a BlockArchive) Option {
	return func(s *Service) { s.archive = a }
}

// WithBlockSignal triggers a refresh as soon as a new block is announced.
func WithBlockSignal(signal <-chan struct{}) Option {
	return func(s *Service) { s.blockSignal = signal }
}

// NewService wires the session components. A non-positive interval falls back
// to DefaultRefreshInterval.
func NewService(chain ChainStore, pool Mempool, miner Miner, interval time.Duration, logger *zap.Logger, opts ...Option) *Service {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	s := &Service{
		chain:     chain,
		pool:      pool,
		miner:     miner,
		logger:    logger.Named("dashboard"),
		interval:  interval,
		sleep:     clock.SleepWithContext,
		selectSet: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run refreshes immediately and then on every interval or block signal until
// ctx is canceled. A running mining session is stopped on return.
func (s *Service) Run(ctx context.Context) error {
	s.mu.Lock()
	s.runCtx = ctx
	s.mu.Unlock()
	defer s.teardown()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("refresh cycle incomplete", zap.Error(err))
		}
		if err := s.wait(ctx, s.interval); err != nil {
			return err
		}
	}
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.blockSignal:
		s.logger.Debug("new block announced")
		return nil
	case <-timer.C:
		return nil
	}
}

func (s *Service) teardown() {
	if err := s.miner.Stop(); err != nil && !errors.Is(err, mining.ErrNotRunning) {
		s.logger.Warn("mining not stopped", zap.Error(err))
	}

	s.mu.Lock()
	s.runCtx = nil
	s.mu.Unlock()
}

// Refresh reloads the latest block, the recent blocks and the pending pool
// concurrently and then recomputes the statistics. Failures stay visible in the
// component views; the first one is also returned.
func (s *Service) Refresh(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		block, err := s.chain.RefreshLatestBlock(ctx)
		if err != nil {
			return err
		}
		s.archiveBlock(ctx, *block)
		return nil
	})
	g.Go(func() error {
		return s.chain.RefreshRecentBlocks(ctx)
	})
	g.Go(func() error {
		return s.pool.Refresh(ctx)
	})

	err := g.Wait()
	s.recomputeStats()
	return err
}

func (s *Service) archiveBlock(ctx context.Context, block model.Block) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Archive(ctx, block); err != nil {
		s.logger.Warn("block not archived", zap.Uint64("height", block.Height), zap.Error(err))
	}
}

func (s *Service) recomputeStats() {
	s.chain.RefreshNetworkStats(s.pool.Materialized(), s.pool.Identifiers())
}

// Search looks a block up by height or hash.
func (s *Service) Search(ctx context.Context, query string) (*model.Block, error) {
	return s.chain.SearchBlock(ctx, query)
}

// LoadMore materializes the next page of pending transactions.
func (s *Service) LoadMore(ctx context.Context) (int, error) {
	page, err := s.pool.LoadMore(ctx)
	if err != nil {
		return page, err
	}
	s.recomputeStats()
	return page, nil
}

// Select adds a materialized transaction to the selection.
func (s *Service) Select(txid string) error {
	if _, ok := s.pool.Lookup(txid); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTransaction, txid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(txid)
	return nil
}

// Deselect removes txid from the selection. Unselected ids are ignored.
func (s *Service) Deselect(txid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(txid)
}

// Toggle flips the selection of txid and reports whether it is now selected.
func (s *Service) Toggle(txid string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.selectSet[txid]; ok {
		s.removeLocked(txid)
		s.mu.Unlock()
		return false, nil
	}
	s.mu.Unlock()

	if err := s.Select(txid); err != nil {
		return false, err
	}
	return true, nil
}

// SelectAll replaces the selection with every materialized transaction.
func (s *Service) SelectAll() int {
	txs := s.pool.Materialized()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.selectSet = make(map[string]struct{}, len(txs))
	for _, tx := range txs {
		s.addLocked(tx.TxID)
	}
	return len(s.selected)
}

// ClearSelection empties the selection.
func (s *Service) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.selectSet = make(map[string]struct{})
}

// Selection returns the selected ids in the order they were selected.
func (s *Service) Selection() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s *Service) addLocked(txid string) {
	if _, ok := s.selectSet[txid]; ok {
		return
	}
	s.selectSet[txid] = struct{}{}
	s.selected = append(s.selected, txid)
}

func (s *Service) removeLocked(txid string) {
	if _, ok := s.selectSet[txid]; !ok {
		return
	}
	delete(s.selectSet, txid)
	for i, id := range s.selected {
		if id == txid {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
}

// StartMining runs a session over the current selection against the latest
// block. The session outlives the caller's request and ends with Run.
func (s *Service) StartMining() (*mining.Session, error) {
	return s.miner.Start(s.runContext(), s.Selection(), s.chain.Latest())
}

// StopMining halts the running session.
func (s *Service) StopMining() error {
	return s.miner.Stop()
}

func (s *Service) runContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runCtx == nil {
		return context.Background()
	}
	return s.runCtx
}

// View returns a copy of the session state.
func (s *Service) View() View {
	return View{
		Chain:     s.chain.Snapshot(),
		Mempool:   s.pool.View(),
		Selection: s.Selection(),
		Mining:    s.miner.Status(),
	}
}
