package dashboard

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mempool"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mining"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainStore interface {
		RefreshLatestBlock(ctx context.Context) (*model.Block, error)
		RefreshRecentBlocks(ctx context.Context) error
		RefreshNetworkStats(txs []model.Transaction, pendingCount int) *model.NetworkStats
		SearchBlock(ctx context.Context, query string) (*model.Block, error)
		Latest() *model.Block
		Snapshot() chainstate.Snapshot
	}
	Mempool interface {
		Refresh(ctx context.Context) error
		LoadMore(ctx context.Context) (int, error)
		Materialized() []model.Transaction
		Lookup(txid string) (model.Transaction, bool)
		Identifiers() int
		View() mempool.View
	}
	Miner interface {
		Start(ctx context.Context, selectedIDs []string, tip *model.Block) (*mining.Session, error)
		Stop() error
		Status() mining.Status
	}
	// BlockArchive receives every latest block the dashboard observes.
	BlockArchive interface {
		Archive(ctx context.Context, block model.Block) error
	}
)
