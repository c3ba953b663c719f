package response

import (
	"time"

	"github.com/shopspring/decimal"

	"suprimentos/internal/domain/entities"
)

type BudgetResponse struct {
	ID         string          `json:"id"`
	CostCenter string          `json:"cost_center"`
	Project    string          `json:"project,omitempty"`
	Category   string          `json:"category,omitempty"`
	Year       int             `json:"year"`
	Total      decimal.Decimal `json:"total"`
	Used       decimal.Decimal `json:"used"`
	Reserved   decimal.Decimal `json:"reserved"`
	Available  decimal.Decimal `json:"available"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		CostCenter: b.CostCenter,
		Project:    b.Project,
		Category:   b.Category,
		Year:       b.Year,
		Total:      b.Total,
		Used:       b.Used,
		Reserved:   b.Reserved,
		Available:  b.Available,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}

// BalanceResponse is the saldo shown on requisition screens. PercentUsed is
// rounded to two places for display only.
type BalanceResponse struct {
	BudgetID    string          `json:"budget_id,omitempty"`
	CostCenter  string          `json:"cost_center"`
	Project     string          `json:"project,omitempty"`
	Category    string          `json:"category,omitempty"`
	Year        int             `json:"year"`
	Total       decimal.Decimal `json:"total"`
	Used        decimal.Decimal `json:"used"`
	Reserved    decimal.Decimal `json:"reserved"`
	Available   decimal.Decimal `json:"available"`
	PercentUsed decimal.Decimal `json:"percent_used"`
	Status      string          `json:"status"`
	Found       bool            `json:"found"`
}

func FromBalance(b entities.Balance) BalanceResponse {
	return BalanceResponse{
		BudgetID:    b.BudgetID,
		CostCenter:  b.CostCenter,
		Project:     b.Project,
		Category:    b.Category,
		Year:        b.Year,
		Total:       b.Total,
		Used:        b.Used,
		Reserved:    b.Reserved,
		Available:   b.Available,
		PercentUsed: b.PercentUsed.Round(2),
		Status:      string(b.Status),
		Found:       b.Found,
	}
}
