// Package mempool tracks the pending transaction identifiers and materializes
// their details page by page.
package mempool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/workerpool"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// State of the controller.
type State string

const (
	StateIdle          State = "idle"
	StateLoading       State = "loading-page"
	StateIdleWithError State = "idle-with-error"
)

const (
	DefaultPageSize = 20
	DefaultWorkers  = 8
)

var (
	ErrMempoolUnavailable = errors.New("pending transactions load failed")
	ErrNoMorePages        = errors.New("no more pending transactions to load")
	ErrInvalidPage        = errors.New("invalid page")
)

// Options configure paging.
type Options struct {
	PageSize int
	// Workers bounds concurrent detail fetches within one page.
	Workers int
}

// View is a read-only copy of the controller state.
type View struct {
	State        State
	Err          error
	Identifiers  int
	Cursor       int
	PageSize     int
	Materialized []model.Transaction
	UpdatedAt    time.Time
}

// Controller owns the identifier snapshot and the materialized transactions.
//
// Materialized detail is kept per page. Reloading page 0 replaces only page 0's
// contribution: entries from later pages are not re-validated against a newer
// identifier snapshot until those pages are requested again.
type Controller struct {
	gateway Gateway
	metrics Metrics
	logger  *zap.Logger
	opts    Options

	mu        sync.Mutex
	ids       []string
	pages     [][]model.Transaction
	cursor    int
	loading   int
	err       error
	updatedAt time.Time
}

// NewController constructs a Controller.
func NewController(gateway Gateway, metrics Metrics, opts Options, logger *zap.Logger) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return &Controller{
		gateway: gateway,
		metrics: metrics,
		logger:  logger.Named("mempool"),
		opts:    opts,
	}
}

// Refresh reloads the identifier snapshot and then page 0.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.RefreshIdentifiers(ctx); err != nil {
		return err
	}
	_, err := c.LoadPage(ctx, 0, c.opts.PageSize)
	return err
}

// RefreshIdentifiers overwrites the identifier snapshot and resets the cursor.
// On failure the previous snapshot is kept.
func (c *Controller) RefreshIdentifiers(ctx context.Context) error {
	ids, err := c.gateway.MempoolTxIDs(ctx)
	c.metrics.ObserveRefresh(err, len(ids))
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrMempoolUnavailable, err)
		c.logger.Warn("pending identifiers not refreshed", zap.Error(err))

		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.ids = ids
	c.cursor = 0
	c.err = nil
	c.updatedAt = time.Now()
	c.mu.Unlock()

	c.logger.Debug("pending identifiers refreshed", zap.Int("count", len(ids)))
	return nil
}

// LoadPage fetches the details of identifiers [page*size, page*size+size)
// concurrently. Individual fetch failures are dropped; the successes become
// the page's contribution. It returns how many transactions were stored.
func (c *Controller) LoadPage(ctx context.Context, page, size int) (int, error) {
	if page < 0 || size <= 0 {
		return 0, fmt.Errorf("%w: page %d size %d", ErrInvalidPage, page, size)
	}

	c.mu.Lock()
	ids := pageSlice(c.ids, page, size)
	c.loading++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading--
		c.mu.Unlock()
	}()

	started := time.Now()
	results := workerpool.Map(ctx, c.opts.Workers, ids, c.fetch)

	fetched, errs := workerpool.Split(results)
	txs := make([]model.Transaction, 0, len(fetched))
	for _, tx := range fetched {
		txs = append(txs, *tx)
	}
	c.metrics.ObservePageLoad(len(txs), len(errs), started)

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(errs) > 0 {
		skipped := multierror.Append(nil, errs...)
		c.logger.Debug("pending transactions skipped",
			zap.Int("page", page),
			zap.Int("failed", skipped.Len()),
			zap.Error(skipped),
		)
	}

	c.mu.Lock()
	for len(c.pages) <= page {
		c.pages = append(c.pages, nil)
	}
	c.pages[page] = txs
	c.mu.Unlock()

	return len(txs), nil
}

func (c *Controller) fetch(ctx context.Context, txid string) (*model.Transaction, error) {
	tx, err := c.gateway.Transaction(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", txid, err)
	}
	if tx == nil {
		return nil, fmt.Errorf("tx %s: empty transaction payload", txid)
	}
	return tx, nil
}

// LoadMore advances the cursor and loads the next page. It is rejected with
// ErrNoMorePages once the pages up to the cursor cover the snapshot or the next
// page would start past its end. Stale pages beyond the cursor do not count.
func (c *Controller) LoadMore(ctx context.Context) (int, error) {
	c.mu.Lock()
	next := c.cursor + 1
	if c.loadedLocked() >= len(c.ids) || next*c.opts.PageSize >= len(c.ids) {
		c.mu.Unlock()
		return c.cursor, ErrNoMorePages
	}
	c.cursor = next
	c.mu.Unlock()

	if _, err := c.LoadPage(ctx, next, c.opts.PageSize); err != nil {
		return next, err
	}
	return next, nil
}

// Materialized returns the fetched transactions in page order without duplicates.
func (c *Controller) Materialized() []model.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.materializedLocked()
}

// loadedLocked counts distinct transactions on pages 0..cursor.
func (c *Controller) loadedLocked() int {
	seen := make(map[string]struct{})
	for i := 0; i <= c.cursor && i < len(c.pages); i++ {
		for _, tx := range c.pages[i] {
			seen[tx.TxID] = struct{}{}
		}
	}
	return len(seen)
}

func (c *Controller) materializedLocked() []model.Transaction {
	seen := make(map[string]struct{})
	out := make([]model.Transaction, 0)
	for _, txs := range c.pages {
		for _, tx := range txs {
			if _, ok := seen[tx.TxID]; ok {
				continue
			}
			seen[tx.TxID] = struct{}{}
			out = append(out, tx)
		}
	}
	return out
}

// Lookup reports whether txid is materialized.
func (c *Controller) Lookup(txid string) (model.Transaction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, txs := range c.pages {
		for _, tx := range txs {
			if tx.TxID == txid {
				return tx, true
			}
		}
	}
	return model.Transaction{}, false
}

// Identifiers returns the size of the identifier snapshot.
func (c *Controller) Identifiers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ids)
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	switch {
	case c.loading > 0:
		return StateLoading
	case c.err != nil:
		return StateIdleWithError
	default:
		return StateIdle
	}
}

// View returns a copy of the controller state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		State:        c.stateLocked(),
		Err:          c.err,
		Identifiers:  len(c.ids),
		Cursor:       c.cursor,
		PageSize:     c.opts.PageSize,
		Materialized: c.materializedLocked(),
		UpdatedAt:    c.updatedAt,
	}
}

func pageSlice(ids []string, page, size int) []string {
	start := page * size
	if start >= len(ids) {
		return nil
	}
	end := start + size
	if end > len(ids) {
		end = len(ids)
	}
	out := make([]string, end-start)
	copy(out, ids[start:end])
	return out
}
