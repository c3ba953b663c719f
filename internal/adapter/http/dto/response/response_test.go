package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"suprimentos/internal/domain/entities"
)

func TestFromBalance(t *testing.T) {
	res := FromBalance(entities.Balance{
		BudgetID:    "CC1###2026",
		CostCenter:  "CC1",
		Total:       decimal.NewFromInt(3),
		PercentUsed: decimal.RequireFromString("66.666666"),
		Status:      entities.BalanceStatusNormal,
		Found:       true,
	})
	if res.PercentUsed.String() != "66.67" {
		t.Fatalf("expected rounded percent, got %s", res.PercentUsed)
	}
	if res.Status != "normal" || !res.Found {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestFromBudgets(t *testing.T) {
	out := FromBudgets([]entities.Budget{{ID: "b1", Total: decimal.NewFromInt(10)}, {ID: "b2"}})
	if len(out) != 2 || out[0].ID != "b1" || !out[0].Total.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected budgets %+v", out)
	}
	if got := FromBudgets(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromReservation(t *testing.T) {
	now := time.Now().UTC()
	realized := decimal.NewFromInt(90)
	res := FromReservation(entities.Reservation{
		ID:             "r1",
		RequisitionID:  "req-1",
		Amount:         decimal.NewFromInt(100),
		Status:         entities.ReservationStatusConfirmada,
		RealizedAmount: &realized,
		ConfirmedAt:    &now,
	})
	if res.Status != "confirmada" || res.RealizedAmount == nil || !res.RealizedAmount.Equal(realized) {
		t.Fatalf("unexpected response %+v", res)
	}

	hist := FromRequisitionHistory([]entities.RequisitionHistory{{ID: "h1", Action: entities.HistoryActionReservaCriada}})
	if len(hist) != 1 || hist[0].Action != "reserva_criada" {
		t.Fatalf("unexpected history %+v", hist)
	}
}

func TestFromBudgetRule(t *testing.T) {
	res := FromBudgetRule(entities.BudgetRule{
		ID:        "rule-1",
		Name:      "Acima de 5 mil",
		Condition: entities.ByValueCondition{Min: decimal.NewFromInt(5000)},
		Active:    true,
	})
	if res.Kind != "por_valor" {
		t.Fatalf("unexpected kind %q", res.Kind)
	}
	var cond map[string]any
	if err := json.Unmarshal(res.Condition, &cond); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cond["valor_minimo"] != "5000" {
		t.Fatalf("unexpected condition %s", res.Condition)
	}

	empty := FromBudgetRule(entities.BudgetRule{ID: "rule-2"})
	if string(empty.Condition) != "{}" || empty.Kind != "" {
		t.Fatalf("unexpected empty rule %+v", empty)
	}
}

func TestFromOrderPayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	res := FromOrderPayment(entities.OrderPayment{
		ID:                 "pay-1",
		OrderID:            "o1",
		Amount:             decimal.RequireFromString("150.25"),
		Date:               now,
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]interface{}{"a": "b"},
	})
	if res.PaymentID != "pay-1" || res.OrderID != "o1" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.ProviderPayloadRaw != string(raw) || res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
	if len(FromOrderPayments([]entities.OrderPayment{{ID: "a"}, {ID: "b"}})) != 2 {
		t.Fatalf("expected two payments")
	}
}
