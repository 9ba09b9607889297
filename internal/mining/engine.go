// Package mining simulates a proof-of-work nonce search over selected pending
// transactions. No header is hashed: the engine models iteration count, hash
// rate and a probabilistic stopping rule.
package mining

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/safe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State of the engine.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateStopped   State = "stopped"
)

const hashPrefix = "00000"

var (
	ErrNoSelection    = errors.New("no transaction selected")
	ErrInvalidTxID    = errors.New("invalid transaction id")
	ErrAlreadyRunning = errors.New("mining already running")
	ErrNotRunning     = errors.New("mining not running")
)

// Config tunes the simulation.
type Config struct {
	TickInterval time.Duration
	// Each tick adds a uniform increment in [MinIncrement, MaxIncrement].
	MinIncrement uint64
	MaxIncrement uint64
	// FoundProbability is the per-tick chance of stopping on a candidate.
	FoundProbability float64
	// SuccessProbability decides, once per run, whether the candidate wins.
	SuccessProbability float64
	// NonceCeiling forces a stop; it never exceeds math.MaxUint32.
	NonceCeiling uint64
}

// DefaultConfig returns the dashboard defaults.
func DefaultConfig() Config {
	return Config{
		TickInterval:       time.Second,
		MinIncrement:       10000,
		MaxIncrement:       59999,
		FoundProbability:   0.0001,
		SuccessProbability: 0.1,
		NonceCeiling:       math.MaxUint32,
	}
}

func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
	if c.MinIncrement == 0 {
		c.MinIncrement = def.MinIncrement
	}
	if c.MaxIncrement < c.MinIncrement {
		c.MaxIncrement = c.MinIncrement
	}
	if c.NonceCeiling == 0 || c.NonceCeiling > math.MaxUint32 {
		c.NonceCeiling = math.MaxUint32
	}
	return c
}

// Session describes one run from Start.
type Session struct {
	ID          string
	SelectedIDs []string
	StartedAt   time.Time
	MerkleRoot  chainhash.Hash
	// PrevBlockHash and Target come from the tip known at start, if any.
	PrevBlockHash string
	Bits          uint32
	Target        *big.Int
}

// Outcome is the frozen result of a run that reached a stopping condition.
type Outcome struct {
	Succeeded  bool
	Iterations uint64
	Elapsed    time.Duration
	HashRate   float64
	// Nonce and Hash are set only on success.
	Nonce *uint32
	Hash  *chainhash.Hash
}

// Status is a read-only view of the engine.
type Status struct {
	State      State
	Session    *Session
	Iterations uint64
	Elapsed    time.Duration
	HashRate   float64
	Outcome    *Outcome
}

// Engine runs at most one session at a time.
type Engine struct {
	cfg     Config
	clock   clock.Clock
	metrics Metrics
	handler OutcomeHandler
	logger  *zap.Logger

	mu         sync.Mutex
	rnd        RandomSource
	state      State
	session    *Session
	iterations uint64
	endedAt    time.Time
	outcome    *Outcome
	cancel     context.CancelFunc
	done       chan struct{}
}

// Option customises an Engine.
type Option func(*Engine)

// WithRandom replaces the default pseudo-random source.
func WithRandom(r RandomSource) Option {
	return func(e *Engine) { e.rnd = r }
}

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithOutcomeHandler registers a receiver for terminal outcomes.
func WithOutcomeHandler(h OutcomeHandler) Option {
	return func(e *Engine) { e.handler = h }
}

// NewEngine constructs an idle Engine.
func NewEngine(cfg Config, metrics Metrics, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg.normalize(),
		clock:   clock.Real{},
		metrics: metrics,
		logger:  logger.Named("mining"),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a session over selectedIDs. tip may be nil. The loop lives until
// a stopping condition, Stop, or cancellation of ctx.
func (e *Engine) Start(ctx context.Context, selectedIDs []string, tip *model.Block) (*Session, error) {
	if len(selectedIDs) == 0 {
		return nil, ErrNoSelection
	}
	root, err := MerkleRoot(selectedIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTxID, err)
	}

	e.mu.Lock()
	if e.state == StateRunning {
		e.mu.Unlock()
		return nil, ErrAlreadyRunning
	}

	ids := make([]string, len(selectedIDs))
	copy(ids, selectedIDs)
	session := &Session{
		ID:          uuid.NewString(),
		SelectedIDs: ids,
		StartedAt:   e.clock.Now(),
		MerkleRoot:  root,
	}
	if tip != nil {
		session.PrevBlockHash = tip.ID
		session.Bits = tip.Bits
		session.Target = tip.Target()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	e.session = session
	e.state = StateRunning
	e.iterations = 0
	e.outcome = nil
	e.endedAt = time.Time{}
	e.cancel = cancel
	e.done = done
	e.mu.Unlock()

	e.logger.Info("mining started",
		zap.String("session", session.ID),
		zap.Int("transactions", len(ids)),
		zap.String("merkle_root", root.String()),
	)

	go e.run(loopCtx, cancel, done, session)

	cp := *session
	return &cp, nil
}

func (e *Engine) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, session *Session) {
	defer close(done)
	defer cancel()

	for {
		if err := e.clock.Sleep(ctx, e.cfg.TickInterval); err != nil {
			e.abandon(session.ID)
			return
		}
		outcome, finished := e.tick(session.ID)
		if !finished {
			continue
		}
		if outcome != nil {
			e.report(ctx, *session, *outcome)
		}
		return
	}
}

// tick advances the session by one step. It reports finished when the session
// is no longer running and returns the outcome when this tick produced one.
func (e *Engine) tick(sessionID string) (*Outcome, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning || e.session == nil || e.session.ID != sessionID {
		return nil, true
	}

	span := int64(e.cfg.MaxIncrement - e.cfg.MinIncrement + 1)
	inc := e.cfg.MinIncrement + uint64(e.rnd.Int63n(span))
	e.iterations += inc
	if e.iterations > e.cfg.NonceCeiling {
		e.iterations = e.cfg.NonceCeiling
	}

	found := e.rnd.Float64() < e.cfg.FoundProbability
	if !found && e.iterations < e.cfg.NonceCeiling {
		return nil, false
	}

	now := e.clock.Now()
	elapsed := now.Sub(e.session.StartedAt)
	outcome := &Outcome{
		Succeeded:  e.rnd.Float64() < e.cfg.SuccessProbability,
		Iterations: e.iterations,
		Elapsed:    elapsed,
		HashRate:   rate(e.iterations, elapsed),
	}
	if outcome.Succeeded {
		nonce, err := safe.Uint32(e.iterations)
		hash, hashErr := e.placeholderHash()
		if err != nil || hashErr != nil {
			outcome.Succeeded = false
		} else {
			outcome.Nonce = &nonce
			outcome.Hash = hash
		}
	}

	e.outcome = outcome
	e.endedAt = now
	if outcome.Succeeded {
		e.state = StateSucceeded
	} else {
		e.state = StateFailed
	}
	return outcome, true
}

// placeholderHash returns a hash-shaped value with a run of leading zeros.
func (e *Engine) placeholderHash() (*chainhash.Hash, error) {
	const digits = "0123456789abcdef"

	var sb strings.Builder
	sb.Grow(chainhash.MaxHashStringSize)
	sb.WriteString(hashPrefix)
	for sb.Len() < chainhash.MaxHashStringSize {
		sb.WriteByte(digits[e.rnd.Int63n(16)])
	}
	return chainhash.NewHashFromStr(sb.String())
}

func (e *Engine) report(ctx context.Context, session Session, outcome Outcome) {
	logger := e.logger.With(
		zap.String("session", session.ID),
		zap.Uint64("iterations", outcome.Iterations),
		zap.Duration("elapsed", outcome.Elapsed),
		zap.Float64("hash_rate", outcome.HashRate),
	)
	if outcome.Succeeded {
		logger.Info("mining succeeded", zap.Uint32("nonce", *outcome.Nonce), zap.Stringer("hash", outcome.Hash))
	} else {
		logger.Info("mining failed")
	}

	e.metrics.ObserveOutcome(outcome.Succeeded, outcome.Iterations, outcome.Elapsed)
	if e.handler != nil {
		e.handler.HandleOutcome(ctx, session, outcome)
	}
}

// abandon marks a session whose loop context ended without Stop.
func (e *Engine) abandon(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateRunning && e.session != nil && e.session.ID == sessionID {
		e.state = StateStopped
		e.endedAt = e.clock.Now()
		e.logger.Info("mining abandoned", zap.String("session", sessionID))
	}
}

// Stop halts a running session without producing an outcome.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return ErrNotRunning
	}
	e.state = StateStopped
	e.outcome = nil
	e.endedAt = e.clock.Now()
	cancel, done := e.cancel, e.done
	sessionID := e.session.ID
	e.mu.Unlock()

	cancel()
	<-done

	e.metrics.ObserveStopped()
	e.logger.Info("mining stopped", zap.String("session", sessionID))
	return nil
}

// Wait blocks until the current loop, if any, has exited.
func (e *Engine) Wait() {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Status returns the current view. The rate is derived from the iteration
// count and the elapsed time at the moment of the call.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Status{State: e.state, Iterations: e.iterations}
	if e.session == nil {
		return st
	}

	cp := *e.session
	st.Session = &cp

	end := e.endedAt
	if e.state == StateRunning || end.IsZero() {
		end = e.clock.Now()
	}
	st.Elapsed = end.Sub(e.session.StartedAt)
	st.HashRate = rate(e.iterations, st.Elapsed)

	if e.outcome != nil {
		out := *e.outcome
		st.Outcome = &out
	}
	return st
}

func rate(iterations uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(iterations) / elapsed.Seconds()
}
