package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"suprimentos/internal/domain/budget"
	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrBudgetAlreadyExists    = errors.New("budget already exists")
	ErrInvalidBudgetID        = errors.New("invalid budget id")
	ErrInvalidCostCenter      = errors.New("invalid cost_center")
	ErrInvalidBudgetYear      = errors.New("invalid budget year")
	ErrInvalidBudgetTotal     = errors.New("invalid budget total")
	ErrBudgetBelowCommitted   = errors.New("budget total below used plus reserved")
	ErrBudgetConcurrentUpdate = errors.New("budget changed concurrently")
)

// CreateBudgetInput is the admin form of a new budget slice.
type CreateBudgetInput struct {
	CostCenter string
	Project    string
	Category   string
	Year       int
	Total      decimal.Decimal
}

// IBudgetUseCase exposes the balance calculator and budget administration.
//
//   - GetBalance never fails for a missing row: it returns the critical zero sentinel.
//   - UpdateBudgetTotal keeps Available = Total - Used - Reserved.
type IBudgetUseCase interface {
	GetBalance(ctx context.Context, costCenter, project, category string) (entities.Balance, error)
	CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	UpdateBudgetTotal(ctx context.Context, id string, total decimal.Decimal) (entities.Budget, error)
	GetBudget(ctx context.Context, id string) (entities.Budget, error)
	ListBudgets(ctx context.Context, year int, costCenter string) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo   interfaces.IBudgetRepository
	cache  interfaces.IBalanceCache
	logger *zap.Logger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase builds the use case. cache may be nil.
func NewBudgetUseCase(repo interfaces.IBudgetRepository, cache interfaces.IBalanceCache, logger *zap.Logger) *BudgetUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BudgetUseCase{repo: repo, cache: cache, logger: logger}
}

func (u *BudgetUseCase) GetBalance(ctx context.Context, costCenter, project, category string) (entities.Balance, error) {
	costCenter = strings.TrimSpace(costCenter)
	project = strings.TrimSpace(project)
	category = strings.TrimSpace(category)
	if costCenter == "" {
		return entities.Balance{}, ErrInvalidCostCenter
	}

	year := currentYear()
	id := entities.BudgetKey(costCenter, project, category, year)

	if u.cache != nil {
		cached, found, err := u.cache.Get(ctx, id)
		if err != nil {
			u.logger.Warn("[budget][usecase] balance cache read failed", zap.String("budget_id", id), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("[budget][usecase] balance lookup failed", zap.String("budget_id", id), zap.Error(err))
		return entities.Balance{}, err
	}
	if b.ID == "" {
		u.logger.Info("[budget][usecase] budget missing; returning critical sentinel", zap.String("budget_id", id))
		return budget.Missing(costCenter, project, category, year), nil
	}

	bal := budget.FromBudget(b)
	if u.cache != nil {
		if err := u.cache.Set(ctx, id, bal); err != nil {
			u.logger.Warn("[budget][usecase] balance cache write failed", zap.String("budget_id", id), zap.Error(err))
		}
	}
	return bal, nil
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	in.CostCenter = strings.TrimSpace(in.CostCenter)
	if in.CostCenter == "" {
		return entities.Budget{}, ErrInvalidCostCenter
	}
	if in.Year <= 0 {
		return entities.Budget{}, ErrInvalidBudgetYear
	}
	if in.Total.IsNegative() {
		return entities.Budget{}, ErrInvalidBudgetTotal
	}

	id := entities.BudgetKey(in.CostCenter, in.Project, in.Category, in.Year)
	if existing, err := u.repo.GetByID(ctx, id); err != nil {
		return entities.Budget{}, err
	} else if existing.ID != "" {
		return entities.Budget{}, ErrBudgetAlreadyExists
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:         id,
		CostCenter: in.CostCenter,
		Project:    strings.TrimSpace(in.Project),
		Category:   strings.TrimSpace(in.Category),
		Year:       in.Year,
		Total:      in.Total,
		Used:       decimal.Zero,
		Reserved:   decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	b.RecomputeAvailable()

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetAlreadyExists
		}
		u.logger.Error("[budget][usecase] create failed", zap.String("budget_id", id), zap.Error(err))
		return entities.Budget{}, err
	}
	u.logger.Info("[budget][usecase] budget created", zap.String("budget_id", id), zap.String("total", b.Total.String()))
	return created, nil
}

func (u *BudgetUseCase) UpdateBudgetTotal(ctx context.Context, id string, total decimal.Decimal) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if total.IsNegative() {
		return entities.Budget{}, ErrInvalidBudgetTotal
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	if total.LessThan(current.Used.Add(current.Reserved)) {
		return entities.Budget{}, ErrBudgetBelowCommitted
	}

	updated, err := u.repo.UpdateTotal(ctx, current, total)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetConcurrentUpdate
		}
		return entities.Budget{}, err
	}
	u.invalidate(ctx, id)
	return updated, nil
}

func (u *BudgetUseCase) GetBudget(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// ListBudgets lists a year's budgets; year 0 means the current year.
func (u *BudgetUseCase) ListBudgets(ctx context.Context, year int, costCenter string) ([]entities.Budget, error) {
	if year < 0 {
		return nil, ErrInvalidBudgetYear
	}
	if year == 0 {
		year = currentYear()
	}
	return u.repo.ListByYear(ctx, year, strings.TrimSpace(costCenter))
}

func (u *BudgetUseCase) invalidate(ctx context.Context, budgetID string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, budgetID); err != nil {
		u.logger.Warn("[budget][usecase] balance cache invalidation failed", zap.String("budget_id", budgetID), zap.Error(err))
	}
}

func currentYear() int {
	return time.Now().UTC().Year()
}
