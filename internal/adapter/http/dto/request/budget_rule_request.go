package request

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase"
)

// BudgetRuleRequest carries the rule kind (tipo_regra) and its condition
// (condicao_config) shaped for that kind.
type BudgetRuleRequest struct {
	Name      string          `json:"name" binding:"required"`
	Kind      string          `json:"kind" binding:"required"`
	Condition json.RawMessage `json:"condition"`
	Active    *bool           `json:"active"`
}

// ToInput defaults Active to true when omitted. Updates ignore it.
func (r BudgetRuleRequest) ToInput() usecase.RuleInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return usecase.RuleInput{
		Name:      r.Name,
		Kind:      entities.RuleKind(strings.TrimSpace(r.Kind)),
		Condition: r.Condition,
		Active:    active,
	}
}

type SetRuleActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// BudgetControlCheckRequest matches should_apply_budget_control(type, estimatedValue, costCenter, category?).
type BudgetControlCheckRequest struct {
	Type           string          `json:"type"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	CostCenter     string          `json:"cost_center"`
	Category       string          `json:"category"`
}

func (r BudgetControlCheckRequest) ToControlInput() entities.ControlInput {
	return entities.ControlInput{
		Type:           strings.TrimSpace(r.Type),
		EstimatedValue: r.EstimatedValue,
		CostCenter:     strings.TrimSpace(r.CostCenter),
		Category:       strings.TrimSpace(r.Category),
	}
}
