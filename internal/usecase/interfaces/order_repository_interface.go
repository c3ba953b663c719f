package interfaces

import (
	"context"
	"suprimentos/internal/domain/entities"
)

// IOrderRepository reads purchase orders from Postgres.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error
}
