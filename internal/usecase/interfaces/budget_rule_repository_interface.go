package interfaces

import (
	"context"
	"suprimentos/internal/domain/entities"
)

// IBudgetRuleRepository abstracts DynamoDB persistence for BudgetRule.

type IBudgetRuleRepository interface {
	Create(ctx context.Context, r entities.BudgetRule) (entities.BudgetRule, error)
	GetByID(ctx context.Context, id string) (entities.BudgetRule, error)
	Update(ctx context.Context, r entities.BudgetRule) (entities.BudgetRule, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.BudgetRule, error)
}
