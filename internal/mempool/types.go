package mempool

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		MempoolTxIDs(ctx context.Context) ([]string, error)
		Transaction(ctx context.Context, txid string) (*model.Transaction, error)
	}
	Metrics interface {
		ObserveRefresh(err error, identifiers int)
		ObservePageLoad(fetched, failed int, started time.Time)
	}
)
