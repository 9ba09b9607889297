package archive

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockRepository interface {
		InsertBlocks(ctx context.Context, network model.Network, blocks []model.Block) error
	}
	MiningRecordRepository interface {
		InsertMiningRecords(ctx context.Context, network model.Network, records []model.MiningRecord) error
	}
)
