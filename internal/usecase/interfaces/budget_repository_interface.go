package interfaces

import (
	"context"
	"suprimentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Lookups return a zero Budget (ID == "") when the row does not exist.
// UpdateTotal is optimistic: it fails with ErrConditionFailed when the stored
// total, used or reserved amount no longer matches current.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	UpdateTotal(ctx context.Context, current entities.Budget, newTotal decimal.Decimal) (entities.Budget, error)
	ListByYear(ctx context.Context, year int, costCenter string) ([]entities.Budget, error)
}
