package usecase

import (
	"context"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/domain/sourcing"

	"go.uber.org/zap"
)

// ISourcingUseCase compares supplier proposals and runs the 3-Bids & Buy award.
type ISourcingUseCase interface {
	Compare(ctx context.Context, proposals []entities.Proposal, items []entities.RFPItem) (sourcing.Comparison, error)
	AutoAward(ctx context.Context, proposals []entities.Proposal, items []entities.RFPItem) (sourcing.Award, error)
}

type SourcingUseCase struct {
	weights sourcing.Weights
	minBids int
	logger  *zap.Logger
}

var _ ISourcingUseCase = (*SourcingUseCase)(nil)

// NewSourcingUseCase builds the use case. Zero weights fall back to the
// defaults and minBids below 1 falls back to 3.
func NewSourcingUseCase(weights sourcing.Weights, minBids int, logger *zap.Logger) *SourcingUseCase {
	if weights.Technical.IsZero() && weights.Price.IsZero() {
		weights = sourcing.DefaultWeights()
	}
	if minBids < 1 {
		minBids = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SourcingUseCase{weights: weights, minBids: minBids, logger: logger}
}

func (u *SourcingUseCase) Compare(ctx context.Context, proposals []entities.Proposal, items []entities.RFPItem) (sourcing.Comparison, error) {
	if len(items) == 0 {
		return sourcing.Comparison{}, sourcing.ErrNoItems
	}
	cmp := sourcing.Compare(proposals, items, u.weights)
	u.logger.Info("[sourcing][usecase] comparison built",
		zap.Int("proposals", len(proposals)), zap.Int("items", len(items)))
	return cmp, nil
}

func (u *SourcingUseCase) AutoAward(ctx context.Context, proposals []entities.Proposal, items []entities.RFPItem) (sourcing.Award, error) {
	award, err := sourcing.AutoAward(proposals, items, u.minBids, u.weights)
	if err != nil {
		u.logger.Info("[sourcing][usecase] auto award refused", zap.Int("proposals", len(proposals)), zap.Error(err))
		return sourcing.Award{}, err
	}
	u.logger.Info("[sourcing][usecase] auto award",
		zap.String("proposal_id", award.Winner.ProposalID), zap.String("supplier_id", award.Winner.SupplierID),
		zap.String("total", award.Winner.Total.String()))
	return award, nil
}
