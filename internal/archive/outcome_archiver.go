package archive

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mining"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/safe"
	"go.uber.org/zap"
)

// OutcomeArchiver writes each terminal mining outcome as it arrives.
type OutcomeArchiver struct {
	repo    MiningRecordRepository
	network model.Network
	logger  *zap.Logger
}

func NewOutcomeArchiver(repo MiningRecordRepository, network model.Network, logger *zap.Logger) *OutcomeArchiver {
	return &OutcomeArchiver{
		repo:    repo,
		network: network,
		logger:  logger.Named("outcome_archiver"),
	}
}

// HandleOutcome implements mining.OutcomeHandler. Write failures are logged only.
func (a *OutcomeArchiver) HandleOutcome(ctx context.Context, session mining.Session, outcome mining.Outcome) {
	record := Record(session, outcome)
	if err := a.repo.InsertMiningRecords(ctx, a.network, []model.MiningRecord{record}); err != nil {
		a.logger.Error("mining outcome not archived", zap.String("session", session.ID), zap.Error(err))
	}
}

// Record converts a mining outcome into its archived form.
func Record(session mining.Session, outcome mining.Outcome) model.MiningRecord {
	selected, err := safe.Uint32(len(session.SelectedIDs))
	if err != nil {
		selected = ^uint32(0)
	}
	record := model.MiningRecord{
		SessionID:  session.ID,
		StartedAt:  session.StartedAt,
		Selected:   selected,
		Succeeded:  outcome.Succeeded,
		Iterations: outcome.Iterations,
		Elapsed:    outcome.Elapsed,
		HashRate:   outcome.HashRate,
	}
	if outcome.Nonce != nil {
		nonce := *outcome.Nonce
		record.Nonce = &nonce
	}
	if outcome.Hash != nil {
		record.Hash = outcome.Hash.String()
	}
	return record
}
