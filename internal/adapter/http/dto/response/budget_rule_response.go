package response

import (
	"encoding/json"
	"time"

	"suprimentos/internal/domain/entities"
)

type BudgetRuleResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Condition json.RawMessage `json:"condition"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromBudgetRule(r entities.BudgetRule) BudgetRuleResponse {
	cond := json.RawMessage("{}")
	if r.Condition != nil {
		if raw, err := entities.EncodeRuleCondition(r.Condition); err == nil {
			cond = raw
		}
	}
	return BudgetRuleResponse{
		ID:        r.ID,
		Name:      r.Name,
		Kind:      string(r.Kind()),
		Condition: cond,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromBudgetRules(rules []entities.BudgetRule) []BudgetRuleResponse {
	out := make([]BudgetRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromBudgetRule(r))
	}
	return out
}

type BudgetControlCheckResponse struct {
	ApplyBudgetControl bool `json:"apply_budget_control"`
}
