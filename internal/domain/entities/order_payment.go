package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentStatusFromProvider maps a Mercado Pago status to ours.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch status {
	case "approved":
		return PaymentStatusAprovado
	case "rejected", "cancelled":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// OrderPayment is a supplier payment of a purchase order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// ProviderPayloadRaw keeps the original gateway response for audit.
type OrderPayment struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	ReservationID string          `json:"reservation_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
