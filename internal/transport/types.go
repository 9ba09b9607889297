package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mining"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlocksSource interface {
		RecentBlocksRaw(ctx context.Context) ([]byte, error)
	}
	// Dashboard is the session the REST intents act on.
	Dashboard interface {
		View() dashboard.View
		Refresh(ctx context.Context) error
		LoadMore(ctx context.Context) (int, error)
		Search(ctx context.Context, query string) (*model.Block, error)
		Select(txid string) error
		Deselect(txid string)
		Toggle(txid string) (bool, error)
		SelectAll() int
		ClearSelection()
		StartMining() (*mining.Session, error)
		StopMining() error
	}
	TipSource interface {
		Latest() *model.Block
	}
)
