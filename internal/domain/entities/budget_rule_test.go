package entities

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeRuleCondition(t *testing.T) {
	cases := []struct {
		name    string
		kind    RuleKind
		raw     string
		wantErr error
	}{
		{name: "global empty", kind: RuleKindGlobal, raw: ""},
		{name: "global object", kind: RuleKindGlobal, raw: `{}`},
		{name: "global with payload", kind: RuleKindGlobal, raw: `{"tipos":["x"]}`, wantErr: ErrInvalidRuleCondition},
		{name: "por tipo", kind: RuleKindPorTipo, raw: `{"tipos":["servico","material"]}`},
		{name: "por tipo empty list", kind: RuleKindPorTipo, raw: `{"tipos":[" "]}`, wantErr: ErrInvalidRuleCondition},
		{name: "por tipo wrong shape", kind: RuleKindPorTipo, raw: `{"valor_minimo":10}`, wantErr: ErrInvalidRuleCondition},
		{name: "por valor", kind: RuleKindPorValor, raw: `{"valor_minimo":"5000.00"}`},
		{name: "por valor negative", kind: RuleKindPorValor, raw: `{"valor_minimo":-1}`, wantErr: ErrInvalidRuleCondition},
		{name: "por categoria", kind: RuleKindPorCategoria, raw: `{"categorias":["TI"]}`},
		{name: "por centro custo", kind: RuleKindPorCentroCusto, raw: `{"centros_custo":["CC-100"]}`},
		{name: "missing payload", kind: RuleKindPorCentroCusto, raw: ``, wantErr: ErrInvalidRuleCondition},
		{name: "unknown kind", kind: RuleKind("por_humor"), raw: `{}`, wantErr: ErrUnknownRuleKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cond, err := DecodeRuleCondition(tc.kind, json.RawMessage(tc.raw))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cond.Kind() != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, cond.Kind())
			}
		})
	}
}

func TestEncodeRuleCondition_RoundTrip(t *testing.T) {
	raw, err := EncodeRuleCondition(ByValueCondition{Min: decimal.NewFromInt(1500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cond, err := DecodeRuleCondition(RuleKindPorValor, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cond.(ByValueCondition).Min.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected condition: %+v", cond)
	}

	raw, _ = EncodeRuleCondition(GlobalCondition{})
	if string(raw) != "{}" {
		t.Fatalf("expected {}, got %s", raw)
	}
}

func TestBudgetRule_Applies(t *testing.T) {
	in := ControlInput{Type: "Material", EstimatedValue: decimal.NewFromInt(1000), CostCenter: "CC-1", Category: "ti"}

	cases := []struct {
		name string
		rule BudgetRule
		want bool
	}{
		{name: "global", rule: BudgetRule{Active: true, Condition: GlobalCondition{}}, want: true},
		{name: "inactive global", rule: BudgetRule{Active: false, Condition: GlobalCondition{}}, want: false},
		{name: "type case-insensitive", rule: BudgetRule{Active: true, Condition: ByTypeCondition{Types: []string{" material "}}}, want: true},
		{name: "type miss", rule: BudgetRule{Active: true, Condition: ByTypeCondition{Types: []string{"servico"}}}, want: false},
		{name: "value at min", rule: BudgetRule{Active: true, Condition: ByValueCondition{Min: decimal.NewFromInt(1000)}}, want: true},
		{name: "value below min", rule: BudgetRule{Active: true, Condition: ByValueCondition{Min: decimal.NewFromInt(1001)}}, want: false},
		{name: "category", rule: BudgetRule{Active: true, Condition: ByCategoryCondition{Categories: []string{"TI"}}}, want: true},
		{name: "cost center", rule: BudgetRule{Active: true, Condition: ByCostCenterCondition{CostCenters: []string{"cc-2"}}}, want: false},
		{name: "no condition", rule: BudgetRule{Active: true}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Applies(in); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if (ByCategoryCondition{Categories: []string{"ti"}}).Matches(ControlInput{}) {
		t.Fatalf("missing category must not match")
	}
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	if !ReservationStatusAtiva.CanTransitionTo(ReservationStatusConfirmada) || !ReservationStatusAtiva.CanTransitionTo(ReservationStatusCancelada) {
		t.Fatalf("ativa must move to confirmada and cancelada")
	}
	if ReservationStatusCancelada.CanTransitionTo(ReservationStatusConfirmada) {
		t.Fatalf("cancelada -> confirmada must be rejected")
	}
	if ReservationStatusConfirmada.CanTransitionTo(ReservationStatusCancelada) {
		t.Fatalf("confirmada -> cancelada must be rejected")
	}
	if ReservationStatusAtiva.CanTransitionTo(ReservationStatusAtiva) {
		t.Fatalf("ativa -> ativa must be rejected")
	}
}

func TestBudgetKey(t *testing.T) {
	if got := BudgetKey(" CC-1 ", "", "TI", 2026); got != "CC-1##TI#2026" {
		t.Fatalf("unexpected key %q", got)
	}
	if BudgetKey("cc", "p", "", 2026) == BudgetKey("cc", "", "p", 2026) {
		t.Fatalf("project and category must not collide")
	}
}
