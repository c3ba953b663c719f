package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"suprimentos/internal/usecase"
)

// CreateReservationRequest mirrors the create_budget_reservation call made
// when a requisition is approved.
type CreateReservationRequest struct {
	RequisitionID string          `json:"requisition_id" binding:"required"`
	CostCenter    string          `json:"cost_center" binding:"required"`
	Category      string          `json:"category"`
	Project       string          `json:"project"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r CreateReservationRequest) ToInput() usecase.CreateReservationInput {
	return usecase.CreateReservationInput{
		RequisitionID: strings.TrimSpace(r.RequisitionID),
		CostCenter:    strings.TrimSpace(r.CostCenter),
		Category:      strings.TrimSpace(r.Category),
		Project:       strings.TrimSpace(r.Project),
		Amount:        r.Amount,
	}
}

type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ConfirmReservationRequest struct {
	RealizedAmount *decimal.Decimal `json:"realized_amount" binding:"required"`
}
