package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownRuleKind      = errors.New("unknown budget rule kind")
	ErrInvalidRuleCondition = errors.New("invalid budget rule condition")
)

// RuleKind selects which condition shape a budget rule (regra orçamentária) carries.
type RuleKind string

const (
	RuleKindGlobal         RuleKind = "global"
	RuleKindPorTipo        RuleKind = "por_tipo"
	RuleKindPorValor       RuleKind = "por_valor"
	RuleKindPorCategoria   RuleKind = "por_categoria"
	RuleKindPorCentroCusto RuleKind = "por_centro_custo"
)

// ControlInput is what a requisition offers to the applicability check.
type ControlInput struct {
	Type           string
	EstimatedValue decimal.Decimal
	CostCenter     string
	Category       string
}

// RuleCondition is the closed set of rule shapes. Each implementation is one
// variant of the union; DecodeRuleCondition is the only way to build one from
// a stored payload.
type RuleCondition interface {
	Kind() RuleKind
	Matches(in ControlInput) bool
	validate() error
}

type GlobalCondition struct{}

type ByTypeCondition struct {
	Types []string `json:"tipos"`
}

type ByValueCondition struct {
	Min decimal.Decimal `json:"valor_minimo"`
}

type ByCategoryCondition struct {
	Categories []string `json:"categorias"`
}

type ByCostCenterCondition struct {
	CostCenters []string `json:"centros_custo"`
}

func (GlobalCondition) Kind() RuleKind       { return RuleKindGlobal }
func (ByTypeCondition) Kind() RuleKind       { return RuleKindPorTipo }
func (ByValueCondition) Kind() RuleKind      { return RuleKindPorValor }
func (ByCategoryCondition) Kind() RuleKind   { return RuleKindPorCategoria }
func (ByCostCenterCondition) Kind() RuleKind { return RuleKindPorCentroCusto }

func (GlobalCondition) Matches(ControlInput) bool { return true }

func (c ByTypeCondition) Matches(in ControlInput) bool {
	return containsFold(c.Types, in.Type)
}

func (c ByValueCondition) Matches(in ControlInput) bool {
	return in.EstimatedValue.GreaterThanOrEqual(c.Min)
}

func (c ByCategoryCondition) Matches(in ControlInput) bool {
	return containsFold(c.Categories, in.Category)
}

func (c ByCostCenterCondition) Matches(in ControlInput) bool {
	return containsFold(c.CostCenters, in.CostCenter)
}

func (GlobalCondition) validate() error { return nil }

func (c ByTypeCondition) validate() error { return requireValues("tipos", c.Types) }

func (c ByValueCondition) validate() error {
	if c.Min.IsNegative() {
		return fmt.Errorf("%w: valor_minimo must not be negative", ErrInvalidRuleCondition)
	}
	return nil
}

func (c ByCategoryCondition) validate() error { return requireValues("categorias", c.Categories) }

func (c ByCostCenterCondition) validate() error {
	return requireValues("centros_custo", c.CostCenters)
}

// DecodeRuleCondition parses raw into the variant selected by kind. Fields that
// do not belong to the variant are rejected.
func DecodeRuleCondition(kind RuleKind, raw json.RawMessage) (RuleCondition, error) {
	var cond RuleCondition
	switch kind {
	case RuleKindGlobal:
		trimmed := strings.TrimSpace(string(raw))
		if trimmed != "" && trimmed != "null" && trimmed != "{}" {
			return nil, fmt.Errorf("%w: global rules take no condition", ErrInvalidRuleCondition)
		}
		return GlobalCondition{}, nil
	case RuleKindPorTipo:
		var c ByTypeCondition
		if err := decodeStrict(raw, &c); err != nil {
			return nil, err
		}
		cond = c
	case RuleKindPorValor:
		var c ByValueCondition
		if err := decodeStrict(raw, &c); err != nil {
			return nil, err
		}
		cond = c
	case RuleKindPorCategoria:
		var c ByCategoryCondition
		if err := decodeStrict(raw, &c); err != nil {
			return nil, err
		}
		cond = c
	case RuleKindPorCentroCusto:
		var c ByCostCenterCondition
		if err := decodeStrict(raw, &c); err != nil {
			return nil, err
		}
		cond = c
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, kind)
	}
	if err := cond.validate(); err != nil {
		return nil, err
	}
	return cond, nil
}

// EncodeRuleCondition is the inverse of DecodeRuleCondition.
func EncodeRuleCondition(c RuleCondition) (json.RawMessage, error) {
	if _, ok := c.(GlobalCondition); ok {
		return json.RawMessage("{}"), nil
	}
	return json.Marshal(c)
}

// BudgetRule decides, per requisition, whether budget control applies.
//
// Storage model (DynamoDB):
//   - PK: id
type BudgetRule struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Condition RuleCondition `json:"-"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Kind returns the rule kind, or "" when no condition is set yet.
func (r BudgetRule) Kind() RuleKind {
	if r.Condition == nil {
		return ""
	}
	return r.Condition.Kind()
}

// Applies reports whether an active rule matches in.
func (r BudgetRule) Applies(in ControlInput) bool {
	return r.Active && r.Condition != nil && r.Condition.Matches(in)
}

func decodeStrict(raw json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%w: condition is required", ErrInvalidRuleCondition)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRuleCondition, err)
	}
	return nil
}

func requireValues(field string, values []string) error {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must list at least one value", ErrInvalidRuleCondition, field)
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
