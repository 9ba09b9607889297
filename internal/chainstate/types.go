package chainstate

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Gateway is the subset of the explorer client the store reads from.
	Gateway interface {
		TipHash(ctx context.Context) (string, error)
		Block(ctx context.Context, hash string) (*model.Block, error)
		BlockHash(ctx context.Context, height uint64) (string, error)
		RecentBlocks(ctx context.Context) ([]model.Block, error)
	}
	Metrics interface {
		ObserveRefresh(kind string, err error, started time.Time)
		SetTipHeight(height uint64)
	}
)
