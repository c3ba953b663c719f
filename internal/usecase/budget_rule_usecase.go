package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBudgetRuleNotFound    = errors.New("budget rule not found")
	ErrInvalidBudgetRuleID   = errors.New("invalid budget rule id")
	ErrInvalidBudgetRuleName = errors.New("invalid budget rule name")
)

// RuleInput is the editable part of a budget rule. Condition is decoded
// strictly according to Kind. Active is read on create only.
type RuleInput struct {
	Name      string
	Kind      entities.RuleKind
	Condition json.RawMessage
	Active    bool
}

// IBudgetRuleUseCase decides whether budget control applies to a requisition
// and administers the rules behind that decision.
type IBudgetRuleUseCase interface {
	ShouldApplyBudgetControl(ctx context.Context, in entities.ControlInput) (bool, error)
	CreateRule(ctx context.Context, in RuleInput) (entities.BudgetRule, error)
	UpdateRule(ctx context.Context, id string, in RuleInput) (entities.BudgetRule, error)
	SetRuleActive(ctx context.Context, id string, active bool) (entities.BudgetRule, error)
	GetRule(ctx context.Context, id string) (entities.BudgetRule, error)
	ListRules(ctx context.Context, onlyActive bool) ([]entities.BudgetRule, error)
	DeleteRule(ctx context.Context, id string) error
}

type BudgetRuleUseCase struct {
	repo   interfaces.IBudgetRuleRepository
	logger *zap.Logger
}

var _ IBudgetRuleUseCase = (*BudgetRuleUseCase)(nil)

func NewBudgetRuleUseCase(repo interfaces.IBudgetRuleRepository, logger *zap.Logger) *BudgetRuleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BudgetRuleUseCase{repo: repo, logger: logger}
}

// ShouldApplyBudgetControl is true when any active rule matches. No active rules means false.
func (u *BudgetRuleUseCase) ShouldApplyBudgetControl(ctx context.Context, in entities.ControlInput) (bool, error) {
	rules, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("[budget-rule][usecase] list failed", zap.Error(err))
		return false, err
	}
	for _, r := range rules {
		if r.Applies(in) {
			u.logger.Debug("[budget-rule][usecase] rule matched",
				zap.String("rule_id", r.ID), zap.String("kind", string(r.Kind())), zap.String("cost_center", in.CostCenter))
			return true, nil
		}
	}
	return false, nil
}

func (u *BudgetRuleUseCase) CreateRule(ctx context.Context, in RuleInput) (entities.BudgetRule, error) {
	cond, name, err := parseRuleInput(in)
	if err != nil {
		return entities.BudgetRule{}, err
	}

	now := time.Now().UTC()
	r := entities.BudgetRule{
		ID:        uuid.NewString(),
		Name:      name,
		Condition: cond,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		u.logger.Error("[budget-rule][usecase] create failed", zap.String("name", name), zap.Error(err))
		return entities.BudgetRule{}, err
	}
	u.logger.Info("[budget-rule][usecase] rule created", zap.String("rule_id", created.ID), zap.String("kind", string(created.Kind())))
	return created, nil
}

// UpdateRule replaces name and condition. in.Active is ignored; activation
// only changes through SetRuleActive.
func (u *BudgetRuleUseCase) UpdateRule(ctx context.Context, id string, in RuleInput) (entities.BudgetRule, error) {
	current, err := u.GetRule(ctx, id)
	if err != nil {
		return entities.BudgetRule{}, err
	}
	cond, name, err := parseRuleInput(in)
	if err != nil {
		return entities.BudgetRule{}, err
	}

	current.Name = name
	current.Condition = cond
	current.UpdatedAt = time.Now().UTC()
	return u.save(ctx, current)
}

func (u *BudgetRuleUseCase) SetRuleActive(ctx context.Context, id string, active bool) (entities.BudgetRule, error) {
	current, err := u.GetRule(ctx, id)
	if err != nil {
		return entities.BudgetRule{}, err
	}
	if current.Active == active {
		return current, nil
	}
	current.Active = active
	current.UpdatedAt = time.Now().UTC()
	return u.save(ctx, current)
}

func (u *BudgetRuleUseCase) GetRule(ctx context.Context, id string) (entities.BudgetRule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetRule{}, ErrInvalidBudgetRuleID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetRule{}, err
	}
	if r.ID == "" {
		return entities.BudgetRule{}, ErrBudgetRuleNotFound
	}
	return r, nil
}

func (u *BudgetRuleUseCase) ListRules(ctx context.Context, onlyActive bool) ([]entities.BudgetRule, error) {
	rules, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !onlyActive {
		return rules, nil
	}
	active := make([]entities.BudgetRule, 0, len(rules))
	for _, r := range rules {
		if r.Active {
			active = append(active, r)
		}
	}
	return active, nil
}

func (u *BudgetRuleUseCase) DeleteRule(ctx context.Context, id string) error {
	if _, err := u.GetRule(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		u.logger.Error("[budget-rule][usecase] delete failed", zap.String("rule_id", id), zap.Error(err))
		return err
	}
	u.logger.Info("[budget-rule][usecase] rule deleted", zap.String("rule_id", id))
	return nil
}

func (u *BudgetRuleUseCase) save(ctx context.Context, r entities.BudgetRule) (entities.BudgetRule, error) {
	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.BudgetRule{}, ErrBudgetRuleNotFound
		}
		u.logger.Error("[budget-rule][usecase] update failed", zap.String("rule_id", r.ID), zap.Error(err))
		return entities.BudgetRule{}, err
	}
	u.logger.Info("[budget-rule][usecase] rule updated", zap.String("rule_id", r.ID), zap.Bool("active", r.Active))
	return updated, nil
}

func parseRuleInput(in RuleInput) (entities.RuleCondition, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", ErrInvalidBudgetRuleName
	}
	cond, err := entities.DecodeRuleCondition(entities.RuleKind(strings.TrimSpace(string(in.Kind))), in.Condition)
	if err != nil {
		return nil, "", err
	}
	return cond, name, nil
}
