package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload for the supplier payment route.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas.
// A bare Mercado Pago body without the envelope is accepted too.
type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
