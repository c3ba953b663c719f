package usecase

import (
	"context"

	"suprimentos/internal/domain/budget"
	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IBudgetAlertUseCase reports current-year budgets that need attention.
type IBudgetAlertUseCase interface {
	Sweep(ctx context.Context) ([]entities.Balance, error)
}

type BudgetAlertUseCase struct {
	repo   interfaces.IBudgetRepository
	logger *zap.Logger
}

var _ IBudgetAlertUseCase = (*BudgetAlertUseCase)(nil)

func NewBudgetAlertUseCase(repo interfaces.IBudgetRepository, logger *zap.Logger) *BudgetAlertUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BudgetAlertUseCase{repo: repo, logger: logger}
}

// Sweep classifies every current-year budget and returns those at atencao or critico.
func (u *BudgetAlertUseCase) Sweep(ctx context.Context) ([]entities.Balance, error) {
	year := currentYear()
	budgets, err := u.repo.ListByYear(ctx, year, "")
	if err != nil {
		u.logger.Error("[budget-alert][usecase] list budgets failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	alerts := make([]entities.Balance, 0)
	for _, b := range budgets {
		bal := budget.FromBudget(b)
		if bal.Status == entities.BalanceStatusNormal {
			continue
		}
		alerts = append(alerts, bal)
		u.logger.Warn("[budget-alert][usecase] budget above threshold",
			zap.String("budget_id", bal.BudgetID),
			zap.String("cost_center", bal.CostCenter),
			zap.String("status", string(bal.Status)),
			zap.String("percent_used", bal.PercentUsed.String()))
	}
	u.logger.Info("[budget-alert][usecase] sweep done", zap.Int("budgets", len(budgets)), zap.Int("alerts", len(alerts)))
	return alerts, nil
}
