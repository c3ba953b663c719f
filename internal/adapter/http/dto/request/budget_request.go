package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"suprimentos/internal/usecase"
)

type CreateBudgetRequest struct {
	CostCenter string          `json:"cost_center" binding:"required"`
	Project    string          `json:"project"`
	Category   string          `json:"category"`
	Year       int             `json:"year"`
	Total      decimal.Decimal `json:"total"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		CostCenter: strings.TrimSpace(r.CostCenter),
		Project:    strings.TrimSpace(r.Project),
		Category:   strings.TrimSpace(r.Category),
		Year:       r.Year,
		Total:      r.Total,
	}
}

type UpdateBudgetTotalRequest struct {
	Total *decimal.Decimal `json:"total" binding:"required"`
}
