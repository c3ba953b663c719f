package entities

import "time"

// Requisition history actions written by the reservation ledger.
const (
	HistoryActionReservaCriada     = "reserva_criada"
	HistoryActionReservaCancelada  = "reserva_cancelada"
	HistoryActionReservaConfirmada = "reserva_confirmada"
)

// RequisitionHistory is one audit line of a requisition (historico_requisicao).
type RequisitionHistory struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	RequisitionID string    `json:"requisition_id" gorm:"column:requisicao_id;size:36;index;not null"`
	Action        string    `json:"action" gorm:"column:acao;size:50;not null"`
	Description   string    `json:"description" gorm:"column:descricao;type:text"`
	CreatedAt     time.Time `json:"created_at"`
}

func (RequisitionHistory) TableName() string {
	return "historico_requisicao"
}
