package request

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"suprimentos/internal/domain/entities"
)

func TestCreateBudgetRequest_ToInput(t *testing.T) {
	in := CreateBudgetRequest{CostCenter: " CC-01 ", Project: " obra ", Category: " ti ", Year: 2026, Total: decimal.NewFromInt(1000)}.ToInput()
	if in.CostCenter != "CC-01" || in.Project != "obra" || in.Category != "ti" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if in.Year != 2026 || !in.Total.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected amounts %+v", in)
	}
}

func TestCreateReservationRequest_ToInput(t *testing.T) {
	in := CreateReservationRequest{RequisitionID: " req-1 ", CostCenter: "CC-01", Amount: decimal.RequireFromString("10.50")}.ToInput()
	if in.RequisitionID != "req-1" || in.CostCenter != "CC-01" || in.Amount.String() != "10.5" {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestBudgetRuleRequest_ToInput(t *testing.T) {
	t.Run("active defaults to true", func(t *testing.T) {
		in := BudgetRuleRequest{Name: "TI", Kind: " por_categoria "}.ToInput()
		if !in.Active || in.Kind != entities.RuleKindPorCategoria {
			t.Fatalf("unexpected input %+v", in)
		}
	})

	t.Run("explicit inactive", func(t *testing.T) {
		off := false
		in := BudgetRuleRequest{Name: "TI", Kind: "global", Active: &off}.ToInput()
		if in.Active {
			t.Fatalf("expected inactive")
		}
	})
}

func TestBudgetControlCheckRequest_ToControlInput(t *testing.T) {
	in := BudgetControlCheckRequest{Type: " servico ", EstimatedValue: decimal.NewFromInt(5), CostCenter: " CC "}.ToControlInput()
	if in.Type != "servico" || in.CostCenter != "CC" || !in.EstimatedValue.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestSourcingRequest_Mapping(t *testing.T) {
	r := SourcingRequest{
		Items: []RFPItemRequest{{ID: "i1", Description: "Cimento", Quantity: decimal.NewFromInt(10), Unit: "sc"}},
		Proposals: []ProposalRequest{{
			ID:             "p1",
			SupplierName:   "Fornecedor A",
			TechnicalScore: decimal.NewFromInt(80),
			Items:          []ProposalItemRequest{{Description: "Cimento", UnitPrice: decimal.NewFromInt(30), TotalPrice: decimal.NewFromInt(300), LeadTimeDays: 5}},
		}},
	}

	items := r.RFPItems()
	if len(items) != 1 || items[0].Unit != "sc" {
		t.Fatalf("unexpected items %+v", items)
	}
	proposals := r.ToProposals()
	if len(proposals) != 1 || len(proposals[0].Items) != 1 {
		t.Fatalf("unexpected proposals %+v", proposals)
	}
	if proposals[0].Items[0].LeadTimeDays != 5 || !proposals[0].TechnicalScore.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("unexpected proposal %+v", proposals[0])
	}
}

func TestOrderExportRequest_ToFilter(t *testing.T) {
	t.Run("full filter", func(t *testing.T) {
		f, err := OrderExportRequest{Format: "csv", Status: "aprovado", SupplierID: " f1 ", From: "2026-01-01", To: "2026-01-31"}.ToFilter()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.OrderStatusAprovado || f.SupplierID != "f1" {
			t.Fatalf("unexpected filter %+v", f)
		}
		if !f.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected from %s", f.From)
		}
		if f.To.Day() != 31 || f.To.Hour() != 23 {
			t.Fatalf("expected end of day, got %s", f.To)
		}
	})

	t.Run("no dates", func(t *testing.T) {
		f, err := OrderExportRequest{Format: "pdf"}.ToFilter()
		if err != nil || f.From != nil || f.To != nil {
			t.Fatalf("unexpected filter %+v err=%v", f, err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := OrderExportRequest{Format: "csv", From: "01/02/2026"}.ToFilter()
		if !errors.Is(err, ErrInvalidExportDate) {
			t.Fatalf("expected ErrInvalidExportDate, got %v", err)
		}
		_, err = OrderExportRequest{Format: "csv", To: "2026-13-01"}.ToFilter()
		if !errors.Is(err, ErrInvalidExportDate) {
			t.Fatalf("expected ErrInvalidExportDate, got %v", err)
		}
	})
}
