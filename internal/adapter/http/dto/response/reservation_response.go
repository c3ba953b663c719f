package response

import (
	"time"

	"github.com/shopspring/decimal"

	"suprimentos/internal/domain/entities"
)

type ReservationResponse struct {
	ID             string           `json:"id"`
	RequisitionID  string           `json:"requisition_id"`
	BudgetID       string           `json:"budget_id"`
	CostCenter     string           `json:"cost_center"`
	Category       string           `json:"category,omitempty"`
	Project        string           `json:"project,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	Status         string           `json:"status"`
	CancelReason   string           `json:"cancel_reason,omitempty"`
	RealizedAmount *decimal.Decimal `json:"realized_amount,omitempty"`
	ConfirmedAt    *time.Time       `json:"confirmed_at,omitempty"`
	CancelledAt    *time.Time       `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromReservation(r entities.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		RequisitionID:  r.RequisitionID,
		BudgetID:       r.BudgetID,
		CostCenter:     r.CostCenter,
		Category:       r.Category,
		Project:        r.Project,
		Amount:         r.Amount,
		Status:         string(r.Status),
		CancelReason:   r.CancelReason,
		RealizedAmount: r.RealizedAmount,
		ConfirmedAt:    r.ConfirmedAt,
		CancelledAt:    r.CancelledAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func FromReservations(rs []entities.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r))
	}
	return out
}

type RequisitionHistoryResponse struct {
	ID            string    `json:"id"`
	RequisitionID string    `json:"requisition_id"`
	Action        string    `json:"action"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromRequisitionHistory(entries []entities.RequisitionHistory) []RequisitionHistoryResponse {
	out := make([]RequisitionHistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, RequisitionHistoryResponse{
			ID:            h.ID,
			RequisitionID: h.RequisitionID,
			Action:        h.Action,
			Description:   h.Description,
			CreatedAt:     h.CreatedAt,
		})
	}
	return out
}
