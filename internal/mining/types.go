package mining

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RandomSource supplies the draws of the simulation. *rand.Rand satisfies it.
	RandomSource interface {
		Int63n(n int64) int64
		Float64() float64
	}
	// OutcomeHandler receives every terminal outcome once.
	OutcomeHandler interface {
		HandleOutcome(ctx context.Context, session Session, outcome Outcome)
	}
	Metrics interface {
		ObserveOutcome(succeeded bool, iterations uint64, elapsed time.Duration)
		ObserveStopped()
	}
)
