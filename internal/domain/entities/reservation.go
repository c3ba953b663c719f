package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus is the lifecycle of a budget reservation (reserva orçamentária).
//
// Allowed transitions:
//   - ativa -> confirmada
//   - ativa -> cancelada
type ReservationStatus string

const (
	ReservationStatusAtiva      ReservationStatus = "ativa"
	ReservationStatusConfirmada ReservationStatus = "confirmada"
	ReservationStatusCancelada  ReservationStatus = "cancelada"
)

// CanTransitionTo reports whether the reservation may move from s to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s != ReservationStatusAtiva {
		return false
	}
	return next == ReservationStatusConfirmada || next == ReservationStatusCancelada
}

// Reservation is a soft hold of Amount against a budget, pending order confirmation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requisition_id-index): requisition_id
type Reservation struct {
	ID             string            `json:"id"`
	RequisitionID  string            `json:"requisition_id"`
	BudgetID       string            `json:"budget_id"`
	CostCenter     string            `json:"cost_center"`
	Category       string            `json:"category,omitempty"`
	Project        string            `json:"project,omitempty"`
	Amount         decimal.Decimal   `json:"amount"`
	Status         ReservationStatus `json:"status"`
	CancelReason   string            `json:"cancel_reason,omitempty"`
	RealizedAmount *decimal.Decimal  `json:"realized_amount,omitempty"`
	ConfirmedAt    *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt    *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
