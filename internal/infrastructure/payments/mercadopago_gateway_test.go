package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

type fakePaymentClient struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakePaymentClient) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("mock skips token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true, nil)
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false, zap.NewNop())
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment_Mock(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, nil)
	g.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":150.5,"external_reference":"o1"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected id=%q status=%q", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if body["external_reference"] != "o1" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected body %v", body)
	}
	if body["date_created"] != "2026-03-01T12:00:00Z" {
		t.Fatalf("unexpected date_created %v", body["date_created"])
	}
}

func TestMercadoPagoGateway_CreatePayment_Client(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakePaymentClient{}, logger: zap.NewNop(), now: time.Now}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`not-json`)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		fc := &fakePaymentClient{err: errors.New("bad_request")}
		g := &MercadoPagoGateway{client: fc, logger: zap.NewNop(), now: time.Now}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10}`)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success", func(t *testing.T) {
		fc := &fakePaymentClient{resp: &payment.Response{ID: 987, Status: "approved"}}
		g := &MercadoPagoGateway{client: fc, logger: zap.NewNop(), now: time.Now}

		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10,"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if id != "987" || status != "approved" || len(raw) == 0 {
			t.Fatalf("unexpected id=%q status=%q raw=%s", id, status, raw)
		}
		if fc.got.TransactionAmount != 10 || fc.got.PaymentMethodID != "pix" {
			t.Fatalf("unexpected request %+v", fc.got)
		}
	})
}
