package response

import (
	"time"

	"github.com/shopspring/decimal"

	"suprimentos/internal/domain/entities"
)

type OrderPaymentResponse struct {
	PaymentID     string          `json:"payment_id"`
	OrderID       string          `json:"order_id"`
	ReservationID string          `json:"reservation_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        string          `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		PaymentID:          p.ID,
		OrderID:            p.OrderID,
		ReservationID:      p.ReservationID,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromOrderPayments(ps []entities.OrderPayment) []OrderPaymentResponse {
	out := make([]OrderPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromOrderPayment(p))
	}
	return out
}
