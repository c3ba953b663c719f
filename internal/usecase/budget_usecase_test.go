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

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBudgetUseCase_GetBalance(t *testing.T) {
	year := time.Now().UTC().Year()
	id := entities.BudgetKey("CC-1", "", "TI", year)

	t.Run("empty cost center", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		_, err := uc.GetBalance(context.Background(), "  ", "", "TI")
		if !errors.Is(err, ErrInvalidCostCenter) {
			t.Fatalf("expected ErrInvalidCostCenter, got %v", err)
		}
	})

	t.Run("missing budget returns critical sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.Budget{}, nil)

		bal, err := uc.GetBalance(context.Background(), " CC-1 ", "", "TI")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if bal.Found {
			t.Fatalf("expected Found=false")
		}
		if bal.Status != entities.BalanceStatusCritico || !bal.PercentUsed.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("unexpected sentinel: %+v", bal)
		}
	})

	t.Run("computes balance and caches it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		cache := mock_interfaces.NewMockIBalanceCache(ctrl)
		uc := NewBudgetUseCase(repo, cache, nil)

		b := entities.Budget{ID: id, CostCenter: "CC-1", Category: "TI", Year: year,
			Total: dec("1000"), Used: dec("700"), Reserved: dec("200"), Available: dec("100")}

		cache.EXPECT().Get(gomock.Any(), id).Return(entities.Balance{}, false, nil)
		repo.EXPECT().GetByID(gomock.Any(), id).Return(b, nil)
		cache.EXPECT().Set(gomock.Any(), id, gomock.Any()).Return(nil)

		bal, err := uc.GetBalance(context.Background(), "CC-1", "", "TI")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !bal.PercentUsed.Equal(dec("90")) || bal.Status != entities.BalanceStatusCritico {
			t.Fatalf("unexpected balance: %+v", bal)
		}
		if !bal.Available.Equal(dec("100")) {
			t.Fatalf("expected available 100, got %s", bal.Available)
		}
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		cache := mock_interfaces.NewMockIBalanceCache(ctrl)
		uc := NewBudgetUseCase(repo, cache, nil)

		cached := entities.Balance{BudgetID: id, Status: entities.BalanceStatusNormal, Found: true}
		cache.EXPECT().Get(gomock.Any(), id).Return(cached, true, nil)

		bal, err := uc.GetBalance(context.Background(), "CC-1", "", "TI")
		if err != nil || bal.BudgetID != id {
			t.Fatalf("expected cached balance, got %+v err=%v", bal, err)
		}
	})

	t.Run("cache failure falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		cache := mock_interfaces.NewMockIBalanceCache(ctrl)
		uc := NewBudgetUseCase(repo, cache, nil)

		cache.EXPECT().Get(gomock.Any(), id).Return(entities.Balance{}, false, errors.New("redis down"))
		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.Budget{ID: id, CostCenter: "CC-1", Total: dec("100"), Available: dec("100")}, nil)
		cache.EXPECT().Set(gomock.Any(), id, gomock.Any()).Return(errors.New("redis down"))

		bal, err := uc.GetBalance(context.Background(), "CC-1", "", "TI")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if bal.Status != entities.BalanceStatusNormal {
			t.Fatalf("expected normal, got %s", bal.Status)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.Budget{}, errors.New("db"))

		if _, err := uc.GetBalance(context.Background(), "CC-1", "", "TI"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBudgetUseCase_CreateBudget(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		cases := []struct {
			name string
			in   CreateBudgetInput
			want error
		}{
			{"cost center", CreateBudgetInput{Year: 2026, Total: dec("1")}, ErrInvalidCostCenter},
			{"year", CreateBudgetInput{CostCenter: "CC", Total: dec("1")}, ErrInvalidBudgetYear},
			{"total", CreateBudgetInput{CostCenter: "CC", Year: 2026, Total: dec("-1")}, ErrInvalidBudgetTotal},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.CreateBudget(context.Background(), tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "CC##TI#2026").Return(entities.Budget{ID: "CC##TI#2026"}, nil)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{CostCenter: "CC", Category: "TI", Year: 2026, Total: dec("10")})
		if !errors.Is(err, ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("conditional write race maps to already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "CC##TI#2026").Return(entities.Budget{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, interfaces.ErrConditionFailed)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{CostCenter: "CC", Category: "TI", Year: 2026, Total: dec("10")})
		if !errors.Is(err, ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("success starts fully available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "CC#P1#TI#2026").Return(entities.Budget{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Budget) (entities.Budget, error) {
			if !b.Available.Equal(dec("5000")) || !b.Used.IsZero() || !b.Reserved.IsZero() {
				t.Fatalf("unexpected amounts: %+v", b)
			}
			if b.CreatedAt.IsZero() || b.Project != "P1" {
				t.Fatalf("unexpected budget: %+v", b)
			}
			return b, nil
		})

		got, err := uc.CreateBudget(context.Background(), CreateBudgetInput{CostCenter: "CC", Project: " P1 ", Category: "TI", Year: 2026, Total: dec("5000")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "CC#P1#TI#2026" {
			t.Fatalf("unexpected id %q", got.ID)
		}
	})
}

func TestBudgetUseCase_UpdateBudgetTotal(t *testing.T) {
	current := entities.Budget{ID: "b1", Total: dec("1000"), Used: dec("300"), Reserved: dec("200"), Available: dec("500")}

	t.Run("below committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(current, nil)

		if _, err := uc.UpdateBudgetTotal(context.Background(), "b1", dec("499.99")); !errors.Is(err, ErrBudgetBelowCommitted) {
			t.Fatalf("expected ErrBudgetBelowCommitted, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Budget{}, nil)

		if _, err := uc.UpdateBudgetTotal(context.Background(), "b1", dec("10")); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(current, nil)
		repo.EXPECT().UpdateTotal(gomock.Any(), current, dec("2000")).Return(entities.Budget{}, interfaces.ErrConditionFailed)

		if _, err := uc.UpdateBudgetTotal(context.Background(), "b1", dec("2000")); !errors.Is(err, ErrBudgetConcurrentUpdate) {
			t.Fatalf("expected ErrBudgetConcurrentUpdate, got %v", err)
		}
	})

	t.Run("success invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		cache := mock_interfaces.NewMockIBalanceCache(ctrl)
		uc := NewBudgetUseCase(repo, cache, nil)

		updated := current
		updated.Total = dec("500")
		updated.Available = dec("0")

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(current, nil)
		repo.EXPECT().UpdateTotal(gomock.Any(), current, dec("500")).Return(updated, nil)
		cache.EXPECT().Delete(gomock.Any(), "b1").Return(nil)

		got, err := uc.UpdateBudgetTotal(context.Background(), " b1 ", dec("500"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Available.IsZero() {
			t.Fatalf("expected available 0, got %s", got.Available)
		}
	})
}

func TestBudgetUseCase_GetAndList(t *testing.T) {
	t.Run("get empty id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		if _, err := uc.GetBudget(context.Background(), ""); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("list defaults to current year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().ListByYear(gomock.Any(), time.Now().UTC().Year(), "CC-1").Return([]entities.Budget{{ID: "x"}}, nil)

		got, err := uc.ListBudgets(context.Background(), 0, " CC-1 ")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %v err=%v", got, err)
		}
	})

	t.Run("list negative year", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		if _, err := uc.ListBudgets(context.Background(), -1, ""); !errors.Is(err, ErrInvalidBudgetYear) {
			t.Fatalf("expected ErrInvalidBudgetYear, got %v", err)
		}
	})
}
