package interfaces

import (
	"context"
	"suprimentos/internal/domain/entities"
)

// IBalanceCache keeps recently computed balances keyed by budget id.
// Get reports found=false on a miss.
type IBalanceCache interface {
	Get(ctx context.Context, budgetID string) (balance entities.Balance, found bool, err error)
	Set(ctx context.Context, budgetID string, balance entities.Balance) error
	Delete(ctx context.Context, budgetID string) error
}
