package interfaces

import (
	"context"
	"suprimentos/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// IReservationRepository persists reservations together with the budget
// amounts they move. Each mutation is one DynamoDB transaction:
//   - Create fails with ErrInsufficientAvailable when the budget cannot hold the amount
//   - Cancel/Confirm fail with ErrReservationNotActive unless the stored status is ativa

type IReservationRepository interface {
	Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error)
	Cancel(ctx context.Context, r entities.Reservation, reason string, at time.Time) (entities.Reservation, error)
	Confirm(ctx context.Context, r entities.Reservation, realized decimal.Decimal, at time.Time) (entities.Reservation, error)
	GetByID(ctx context.Context, id string) (entities.Reservation, error)
	ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.Reservation, error)
}
