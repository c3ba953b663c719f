package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"
	mock_interfaces "suprimentos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type reservationMocks struct {
	repo    *mock_interfaces.MockIReservationRepository
	budgets *mock_interfaces.MockIBudgetRepository
	history *mock_interfaces.MockIRequisitionHistoryRepository
	cache   *mock_interfaces.MockIBalanceCache
}

func newReservationUseCase(t *testing.T) (*ReservationUseCase, reservationMocks) {
	ctrl := gomock.NewController(t)
	m := reservationMocks{
		repo:    mock_interfaces.NewMockIReservationRepository(ctrl),
		budgets: mock_interfaces.NewMockIBudgetRepository(ctrl),
		history: mock_interfaces.NewMockIRequisitionHistoryRepository(ctrl),
		cache:   mock_interfaces.NewMockIBalanceCache(ctrl),
	}
	return NewReservationUseCase(m.repo, m.budgets, m.history, m.cache, nil), m
}

func TestReservationUseCase_Create(t *testing.T) {
	budgetID := entities.BudgetKey("CC-1", "", "TI", time.Now().UTC().Year())
	budget := entities.Budget{ID: budgetID, CostCenter: "CC-1", Category: "TI",
		Total: dec("1000"), Used: dec("0"), Reserved: dec("0"), Available: dec("1000")}

	t.Run("validations", func(t *testing.T) {
		uc := NewReservationUseCase(nil, nil, nil, nil, nil)
		cases := []struct {
			name string
			in   CreateReservationInput
			want error
		}{
			{"requisition", CreateReservationInput{CostCenter: "CC-1", Amount: dec("1")}, ErrInvalidRequisitionID},
			{"cost center", CreateReservationInput{RequisitionID: "req-1", Amount: dec("1")}, ErrInvalidCostCenter},
			{"zero amount", CreateReservationInput{RequisitionID: "req-1", CostCenter: "CC-1"}, ErrInvalidReservationAmount},
			{"negative amount", CreateReservationInput{RequisitionID: "req-1", CostCenter: "CC-1", Amount: dec("-5")}, ErrInvalidReservationAmount},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.CreateReservation(context.Background(), tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("budget missing", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), budgetID).Return(entities.Budget{}, nil)

		_, err := uc.CreateReservation(context.Background(), CreateReservationInput{RequisitionID: "req-1", CostCenter: "CC-1", Category: "TI", Amount: dec("10")})
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("amount above available", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), budgetID).Return(budget, nil)

		_, err := uc.CreateReservation(context.Background(), CreateReservationInput{RequisitionID: "req-1", CostCenter: "CC-1", Category: "TI", Amount: dec("1000.01")})
		if !errors.Is(err, ErrInsufficientBudget) {
			t.Fatalf("expected ErrInsufficientBudget, got %v", err)
		}
	})

	t.Run("transaction condition fails", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), budgetID).Return(budget, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Reservation{}, interfaces.ErrInsufficientAvailable)

		_, err := uc.CreateReservation(context.Background(), CreateReservationInput{RequisitionID: "req-1", CostCenter: "CC-1", Category: "TI", Amount: dec("100")})
		if !errors.Is(err, ErrInsufficientBudget) {
			t.Fatalf("expected ErrInsufficientBudget, got %v", err)
		}
	})

	t.Run("success records history and invalidates cache", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), budgetID).Return(budget, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Reservation) (entities.Reservation, error) {
			if r.ID == "" || r.Status != entities.ReservationStatusAtiva || r.BudgetID != budgetID {
				t.Fatalf("unexpected reservation: %+v", r)
			}
			if !r.Amount.Equal(dec("1000")) {
				t.Fatalf("unexpected amount %s", r.Amount)
			}
			return r, nil
		})
		m.cache.EXPECT().Delete(gomock.Any(), budgetID).Return(nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.RequisitionHistory) error {
			if h.RequisitionID != "req-1" || h.Action != entities.HistoryActionReservaCriada {
				t.Fatalf("unexpected history: %+v", h)
			}
			return nil
		})

		got, err := uc.CreateReservation(context.Background(), CreateReservationInput{RequisitionID: " req-1 ", CostCenter: "CC-1", Category: "TI", Amount: dec("1000")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.RequisitionID != "req-1" {
			t.Fatalf("unexpected requisition id %q", got.RequisitionID)
		}
	})

	t.Run("history failure does not fail the reservation", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), budgetID).Return(budget, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Reservation) (entities.Reservation, error) {
			return r, nil
		})
		m.cache.EXPECT().Delete(gomock.Any(), budgetID).Return(errors.New("redis"))
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("pg"))

		if _, err := uc.CreateReservation(context.Background(), CreateReservationInput{RequisitionID: "req-1", CostCenter: "CC-1", Category: "TI", Amount: dec("1")}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestReservationUseCase_Cancel(t *testing.T) {
	active := entities.Reservation{ID: "r1", RequisitionID: "req-1", BudgetID: "b1", Amount: dec("200"), Status: entities.ReservationStatusAtiva}

	t.Run("reason required", func(t *testing.T) {
		uc := NewReservationUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.CancelReservation(context.Background(), "r1", "  "); !errors.Is(err, ErrInvalidCancelReason) {
			t.Fatalf("expected ErrInvalidCancelReason, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Reservation{}, nil)

		if _, err := uc.CancelReservation(context.Background(), "r1", "desistência"); !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})

	for _, status := range []entities.ReservationStatus{entities.ReservationStatusCancelada, entities.ReservationStatusConfirmada} {
		t.Run("rejects from "+string(status), func(t *testing.T) {
			uc, m := newReservationUseCase(t)
			r := active
			r.Status = status
			m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(r, nil)

			if _, err := uc.CancelReservation(context.Background(), "r1", "motivo"); !errors.Is(err, ErrInvalidReservationTransition) {
				t.Fatalf("expected ErrInvalidReservationTransition, got %v", err)
			}
		})
	}

	t.Run("lost race maps to invalid transition", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(active, nil)
		m.repo.EXPECT().Cancel(gomock.Any(), active, "motivo", gomock.Any()).Return(entities.Reservation{}, interfaces.ErrReservationNotActive)

		if _, err := uc.CancelReservation(context.Background(), "r1", "motivo"); !errors.Is(err, ErrInvalidReservationTransition) {
			t.Fatalf("expected ErrInvalidReservationTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		cancelled := active
		cancelled.Status = entities.ReservationStatusCancelada
		cancelled.CancelReason = "motivo"

		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(active, nil)
		m.repo.EXPECT().Cancel(gomock.Any(), active, "motivo", gomock.Any()).Return(cancelled, nil)
		m.cache.EXPECT().Delete(gomock.Any(), "b1").Return(nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.CancelReservation(context.Background(), "r1", " motivo ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.ReservationStatusCancelada {
			t.Fatalf("unexpected status %s", got.Status)
		}
	})
}

func TestReservationUseCase_Confirm(t *testing.T) {
	active := entities.Reservation{ID: "r1", RequisitionID: "req-1", BudgetID: "b1", Amount: dec("200"), Status: entities.ReservationStatusAtiva}

	t.Run("negative realized", func(t *testing.T) {
		uc := NewReservationUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.ConfirmReservation(context.Background(), "r1", dec("-1")); !errors.Is(err, ErrInvalidRealizedAmount) {
			t.Fatalf("expected ErrInvalidRealizedAmount, got %v", err)
		}
	})

	t.Run("rejects once cancelled", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		r := active
		r.Status = entities.ReservationStatusCancelada
		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(r, nil)

		if _, err := uc.ConfirmReservation(context.Background(), "r1", dec("150")); !errors.Is(err, ErrInvalidReservationTransition) {
			t.Fatalf("expected ErrInvalidReservationTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		realized := dec("150")
		confirmed := active
		confirmed.Status = entities.ReservationStatusConfirmada
		confirmed.RealizedAmount = &realized

		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(active, nil)
		m.repo.EXPECT().Confirm(gomock.Any(), active, realized, gomock.Any()).Return(confirmed, nil)
		m.cache.EXPECT().Delete(gomock.Any(), "b1").Return(nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.RequisitionHistory) error {
			if h.Action != entities.HistoryActionReservaConfirmada {
				t.Fatalf("unexpected action %s", h.Action)
			}
			return nil
		})

		got, err := uc.ConfirmReservation(context.Background(), "r1", realized)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.RealizedAmount == nil || !got.RealizedAmount.Equal(realized) {
			t.Fatalf("unexpected realized amount %v", got.RealizedAmount)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(active, nil)
		m.repo.EXPECT().Confirm(gomock.Any(), active, gomock.Any(), gomock.Any()).Return(entities.Reservation{}, errors.New("dynamo"))

		if _, err := uc.ConfirmReservation(context.Background(), "r1", decimal.Zero); err == nil || err.Error() != "dynamo" {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})
}

func TestReservationUseCase_Lists(t *testing.T) {
	t.Run("by requisition", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.repo.EXPECT().ListByRequisitionID(gomock.Any(), "req-1").Return([]entities.Reservation{{ID: "r1"}, {ID: "r2"}}, nil)

		got, err := uc.ListByRequisition(context.Background(), " req-1 ")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result %v err=%v", got, err)
		}
	})

	t.Run("by requisition empty id", func(t *testing.T) {
		uc := NewReservationUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.ListByRequisition(context.Background(), ""); !errors.Is(err, ErrInvalidRequisitionID) {
			t.Fatalf("expected ErrInvalidRequisitionID, got %v", err)
		}
	})

	t.Run("history without repository", func(t *testing.T) {
		uc := NewReservationUseCase(nil, nil, nil, nil, nil)
		got, err := uc.ListHistory(context.Background(), "req-1")
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty history, got %v err=%v", got, err)
		}
	})

	t.Run("history", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.history.EXPECT().ListByRequisitionID(gomock.Any(), "req-1").Return([]entities.RequisitionHistory{{ID: "h1"}}, nil)

		got, err := uc.ListHistory(context.Background(), "req-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %v err=%v", got, err)
		}
	})
}
