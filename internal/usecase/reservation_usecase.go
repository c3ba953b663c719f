package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrReservationNotFound          = errors.New("reservation not found")
	ErrInvalidReservationID         = errors.New("invalid reservation id")
	ErrInvalidRequisitionID         = errors.New("invalid requisition_id")
	ErrInvalidReservationAmount     = errors.New("invalid reservation amount")
	ErrInvalidRealizedAmount        = errors.New("invalid realized amount")
	ErrInvalidCancelReason          = errors.New("invalid cancel reason")
	ErrInsufficientBudget           = errors.New("insufficient budget")
	ErrInvalidReservationTransition = errors.New("invalid reservation status transition")
)

// CreateReservationInput holds the requisition amount to put on hold.
type CreateReservationInput struct {
	RequisitionID string
	CostCenter    string
	Category      string
	Project       string
	Amount        decimal.Decimal
}

// IReservationUseCase is the reservation ledger (reserva orçamentária).
//
// Each mutation is a single transaction against the budget row; there is no
// compensating logic beyond it. Only ativa reservations can be confirmed or cancelled.
type IReservationUseCase interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (entities.Reservation, error)
	CancelReservation(ctx context.Context, id, reason string) (entities.Reservation, error)
	ConfirmReservation(ctx context.Context, id string, realized decimal.Decimal) (entities.Reservation, error)
	GetReservation(ctx context.Context, id string) (entities.Reservation, error)
	ListByRequisition(ctx context.Context, requisitionID string) ([]entities.Reservation, error)
	ListHistory(ctx context.Context, requisitionID string) ([]entities.RequisitionHistory, error)
}

type ReservationUseCase struct {
	repo       interfaces.IReservationRepository
	budgetRepo interfaces.IBudgetRepository
	history    interfaces.IRequisitionHistoryRepository
	cache      interfaces.IBalanceCache
	logger     *zap.Logger
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

// NewReservationUseCase builds the use case. history and cache may be nil.
func NewReservationUseCase(
	repo interfaces.IReservationRepository,
	budgetRepo interfaces.IBudgetRepository,
	history interfaces.IRequisitionHistoryRepository,
	cache interfaces.IBalanceCache,
	logger *zap.Logger,
) *ReservationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReservationUseCase{repo: repo, budgetRepo: budgetRepo, history: history, cache: cache, logger: logger}
}

func (u *ReservationUseCase) CreateReservation(ctx context.Context, in CreateReservationInput) (entities.Reservation, error) {
	in.RequisitionID = strings.TrimSpace(in.RequisitionID)
	in.CostCenter = strings.TrimSpace(in.CostCenter)
	in.Project = strings.TrimSpace(in.Project)
	in.Category = strings.TrimSpace(in.Category)
	if in.RequisitionID == "" {
		return entities.Reservation{}, ErrInvalidRequisitionID
	}
	if in.CostCenter == "" {
		return entities.Reservation{}, ErrInvalidCostCenter
	}
	if !in.Amount.IsPositive() {
		return entities.Reservation{}, ErrInvalidReservationAmount
	}

	budgetID := entities.BudgetKey(in.CostCenter, in.Project, in.Category, currentYear())
	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		u.logger.Error("[reservation][usecase] budget lookup failed", zap.String("budget_id", budgetID), zap.Error(err))
		return entities.Reservation{}, err
	}
	if b.ID == "" {
		return entities.Reservation{}, ErrBudgetNotFound
	}
	if b.Available.LessThan(in.Amount) {
		u.logger.Info("[reservation][usecase] insufficient budget",
			zap.String("budget_id", budgetID), zap.String("available", b.Available.String()), zap.String("amount", in.Amount.String()))
		return entities.Reservation{}, ErrInsufficientBudget
	}

	now := time.Now().UTC()
	r := entities.Reservation{
		ID:            uuid.NewString(),
		RequisitionID: in.RequisitionID,
		BudgetID:      budgetID,
		CostCenter:    in.CostCenter,
		Category:      in.Category,
		Project:       in.Project,
		Amount:        in.Amount,
		Status:        entities.ReservationStatusAtiva,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrInsufficientAvailable) {
			return entities.Reservation{}, ErrInsufficientBudget
		}
		u.logger.Error("[reservation][usecase] create failed", zap.String("requisition_id", in.RequisitionID), zap.Error(err))
		return entities.Reservation{}, err
	}

	u.logger.Info("[reservation][usecase] reservation created",
		zap.String("reservation_id", created.ID), zap.String("budget_id", budgetID), zap.String("amount", in.Amount.String()))
	u.afterMutation(ctx, created, entities.HistoryActionReservaCriada,
		fmt.Sprintf("Reserva %s de %s no orçamento %s", created.ID, created.Amount.StringFixed(2), budgetID))
	return created, nil
}

func (u *ReservationUseCase) CancelReservation(ctx context.Context, id, reason string) (entities.Reservation, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Reservation{}, ErrInvalidCancelReason
	}

	current, err := u.loadForTransition(ctx, id, entities.ReservationStatusCancelada)
	if err != nil {
		return entities.Reservation{}, err
	}

	updated, err := u.repo.Cancel(ctx, current, reason, time.Now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrReservationNotActive) {
			return entities.Reservation{}, ErrInvalidReservationTransition
		}
		u.logger.Error("[reservation][usecase] cancel failed", zap.String("reservation_id", current.ID), zap.Error(err))
		return entities.Reservation{}, err
	}

	u.logger.Info("[reservation][usecase] reservation cancelled", zap.String("reservation_id", updated.ID), zap.String("reason", reason))
	u.afterMutation(ctx, updated, entities.HistoryActionReservaCancelada,
		fmt.Sprintf("Reserva %s cancelada: %s", updated.ID, reason))
	return updated, nil
}

func (u *ReservationUseCase) ConfirmReservation(ctx context.Context, id string, realized decimal.Decimal) (entities.Reservation, error) {
	if realized.IsNegative() {
		return entities.Reservation{}, ErrInvalidRealizedAmount
	}

	current, err := u.loadForTransition(ctx, id, entities.ReservationStatusConfirmada)
	if err != nil {
		return entities.Reservation{}, err
	}

	updated, err := u.repo.Confirm(ctx, current, realized, time.Now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrReservationNotActive) {
			return entities.Reservation{}, ErrInvalidReservationTransition
		}
		u.logger.Error("[reservation][usecase] confirm failed", zap.String("reservation_id", current.ID), zap.Error(err))
		return entities.Reservation{}, err
	}

	u.logger.Info("[reservation][usecase] reservation confirmed",
		zap.String("reservation_id", updated.ID), zap.String("realized", realized.String()))
	u.afterMutation(ctx, updated, entities.HistoryActionReservaConfirmada,
		fmt.Sprintf("Reserva %s confirmada com valor realizado %s", updated.ID, realized.StringFixed(2)))
	return updated, nil
}

func (u *ReservationUseCase) GetReservation(ctx context.Context, id string) (entities.Reservation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Reservation{}, ErrInvalidReservationID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Reservation{}, err
	}
	if r.ID == "" {
		return entities.Reservation{}, ErrReservationNotFound
	}
	return r, nil
}

func (u *ReservationUseCase) ListByRequisition(ctx context.Context, requisitionID string) ([]entities.Reservation, error) {
	requisitionID = strings.TrimSpace(requisitionID)
	if requisitionID == "" {
		return nil, ErrInvalidRequisitionID
	}
	return u.repo.ListByRequisitionID(ctx, requisitionID)
}

func (u *ReservationUseCase) ListHistory(ctx context.Context, requisitionID string) ([]entities.RequisitionHistory, error) {
	requisitionID = strings.TrimSpace(requisitionID)
	if requisitionID == "" {
		return nil, ErrInvalidRequisitionID
	}
	if u.history == nil {
		return []entities.RequisitionHistory{}, nil
	}
	return u.history.ListByRequisitionID(ctx, requisitionID)
}

func (u *ReservationUseCase) loadForTransition(ctx context.Context, id string, next entities.ReservationStatus) (entities.Reservation, error) {
	current, err := u.GetReservation(ctx, id)
	if err != nil {
		return entities.Reservation{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		u.logger.Info("[reservation][usecase] transition rejected",
			zap.String("reservation_id", current.ID), zap.String("from", string(current.Status)), zap.String("to", string(next)))
		return entities.Reservation{}, ErrInvalidReservationTransition
	}
	return current, nil
}

// afterMutation records the history line and drops the cached balance. Both
// are best effort: the ledger write already committed.
func (u *ReservationUseCase) afterMutation(ctx context.Context, r entities.Reservation, action, description string) {
	if u.cache != nil {
		if err := u.cache.Delete(ctx, r.BudgetID); err != nil {
			u.logger.Warn("[reservation][usecase] balance cache invalidation failed", zap.String("budget_id", r.BudgetID), zap.Error(err))
		}
	}
	if u.history == nil {
		return
	}
	entry := entities.RequisitionHistory{
		ID:            uuid.NewString(),
		RequisitionID: r.RequisitionID,
		Action:        action,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	}
	if err := u.history.Append(ctx, entry); err != nil {
		u.logger.Warn("[reservation][usecase] history append failed",
			zap.String("requisition_id", r.RequisitionID), zap.String("action", action), zap.Error(err))
	}
}
