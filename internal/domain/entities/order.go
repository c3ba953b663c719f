package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus values of a purchase order (pedido).
type OrderStatus string

const (
	OrderStatusRascunho  OrderStatus = "rascunho"
	OrderStatusAprovado  OrderStatus = "aprovado"
	OrderStatusEnviado   OrderStatus = "enviado"
	OrderStatusPago      OrderStatus = "pago"
	OrderStatusCancelado OrderStatus = "cancelado"
)

// Payable reports whether a supplier payment may be issued for the order.
func (s OrderStatus) Payable() bool {
	return s == OrderStatusAprovado || s == OrderStatusEnviado
}

// Order is a purchase order sent to a supplier.
//
// Storage model (Postgres, table pedidos).
type Order struct {
	ID            string          `json:"id" gorm:"primaryKey;size:36"`
	Number        string          `json:"number" gorm:"column:numero;size:32;uniqueIndex;not null"`
	RequisitionID string          `json:"requisition_id" gorm:"column:requisicao_id;size:36;index"`
	ReservationID *string         `json:"reservation_id,omitempty" gorm:"column:reserva_id;size:36"`
	SupplierID    string          `json:"supplier_id" gorm:"column:fornecedor_id;size:36;index"`
	SupplierName  string          `json:"supplier_name" gorm:"column:fornecedor_nome;size:200"`
	CostCenter    string          `json:"cost_center" gorm:"column:centro_custo;size:50;index"`
	Status        OrderStatus     `json:"status" gorm:"size:20;default:rascunho"`
	Total         decimal.Decimal `json:"total" gorm:"column:valor_total;type:decimal(15,2)"`
	OrderedAt     time.Time       `json:"ordered_at" gorm:"column:data_pedido"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Order) TableName() string {
	return "pedidos"
}

// OrderFilter narrows order listings and exports. Zero values are ignored.
type OrderFilter struct {
	Status     OrderStatus
	SupplierID string
	CostCenter string
	From       *time.Time
	To         *time.Time
}
