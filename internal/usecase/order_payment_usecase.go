package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound                  = errors.New("order not found")
	ErrInvalidOrderID                 = errors.New("invalid order_id")
	ErrOrderNotPayable                = errors.New("order is not payable")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes the payment flow. With Mock set the gateway is never
// called and every payment is approved.
type PaymentOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IOrderPaymentUseCase pays suppliers for purchase orders.
//
//   - Only aprovado/enviado orders can be paid.
//   - The amount always comes from the stored order, never from the payload.
//   - An approved payment marks the order pago and confirms its reservation.
type IOrderPaymentUseCase interface {
	PayOrder(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error)
	ListOrderPayments(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo         interfaces.IOrderPaymentRepository
	orderRepo    interfaces.IOrderRepository
	reservations IReservationUseCase
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
	logger       *zap.Logger
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(
	repo interfaces.IOrderPaymentRepository,
	orderRepo interfaces.IOrderRepository,
	reservations IReservationUseCase,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	logger *zap.Logger,
) *OrderPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderPaymentUseCase{
		repo:         repo,
		orderRepo:    orderRepo,
		reservations: reservations,
		gateway:      gateway,
		opts:         opts,
		logger:       logger,
	}
}

func (u *OrderPaymentUseCase) PayOrder(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	log := u.logger.With(zap.String("order_id", orderID))
	log.Info("[payment][usecase] pay order start", zap.Int("payload_len", len(mpPayload)))

	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Info("[payment][usecase] invalid payload")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Error("[payment][usecase] failed loading order", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	if order.ID == "" {
		return entities.OrderPayment{}, ErrOrderNotFound
	}
	if !order.Status.Payable() {
		log.Info("[payment][usecase] order not payable", zap.String("status", string(order.Status)))
		return entities.OrderPayment{}, fmt.Errorf("%w: status %s", ErrOrderNotPayable, order.Status)
	}

	mpPayload, err = u.enrichPayload(order, mpPayload)
	if err != nil {
		log.Info("[payment][usecase] payload rejected", zap.Error(err))
		return entities.OrderPayment{}, err
	}

	var providerID, providerStatus string
	var providerResp json.RawMessage
	if u.opts.Mock {
		log.Info("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerID, providerStatus, providerResp, err = mockProviderResponse(order, mpPayload)
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	if providerID == "" {
		providerID = uuid.NewString()
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
		}
	}

	p := entities.OrderPayment{
		ID:                 providerID,
		OrderID:            order.ID,
		Amount:             order.Total,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	if order.ReservationID != nil {
		p.ReservationID = *order.ReservationID
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.OrderPayment{}, err
	}

	if created.Status == entities.PaymentStatusAprovado {
		if err := u.settle(ctx, order); err != nil {
			return entities.OrderPayment{}, err
		}
	}

	log.Info("[payment][usecase] pay order done",
		zap.String("payment_id", created.ID), zap.String("status", string(created.Status)), zap.String("provider_status", providerStatus))
	return created, nil
}

func (u *OrderPaymentUseCase) ListOrderPayments(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// settle marks the order paid and turns its reservation into realized spend.
// A reservation that is no longer active is left alone.
func (u *OrderPaymentUseCase) settle(ctx context.Context, order entities.Order) error {
	if err := u.orderRepo.UpdateStatus(ctx, order.ID, entities.OrderStatusPago); err != nil {
		u.logger.Error("[payment][usecase] order status update failed", zap.String("order_id", order.ID), zap.Error(err))
		return err
	}
	if order.ReservationID == nil || *order.ReservationID == "" || u.reservations == nil {
		return nil
	}

	_, err := u.reservations.ConfirmReservation(ctx, *order.ReservationID, order.Total)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidReservationTransition), errors.Is(err, ErrReservationNotFound):
		u.logger.Warn("[payment][usecase] reservation not confirmed",
			zap.String("order_id", order.ID), zap.String("reservation_id", *order.ReservationID), zap.Error(err))
		return nil
	default:
		u.logger.Error("[payment][usecase] reservation confirm failed",
			zap.String("order_id", order.ID), zap.String("reservation_id", *order.ReservationID), zap.Error(err))
		return err
	}
}

// enrichPayload links the payment to the order. Mercado Pago uses
// external_reference to reconcile events; the amount is always the order total.
func (u *OrderPaymentUseCase) enrichPayload(order entities.Order, raw json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil {
		if u.opts.Mock {
			req = map[string]any{}
		} else {
			return nil, ErrInvalidMPPayload
		}
	}

	if !u.opts.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, fmt.Errorf("%w: payment_method_id is required", ErrInvalidMPPayload)
		}
		u.normalizeSandboxPayer(req)
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return nil, fmt.Errorf("%w: payer is required", ErrInvalidMPPayload)
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = order.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Pedido %s - %s", order.Number, order.SupplierName)
	}
	req["transaction_amount"] = order.Total.InexactFloat64()

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *OrderPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its e-mail.
func (u *OrderPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.opts.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.logger.Info("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func mockProviderResponse(order entities.Order, payload json.RawMessage) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = order.ID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = order.Total.InexactFloat64()
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

// classifyGatewayError maps Mercado Pago error bodies to sentinels; other errors pass through.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
