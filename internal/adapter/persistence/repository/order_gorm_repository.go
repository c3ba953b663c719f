package repository

import (
	"context"
	"errors"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// OrderGormRepository reads and updates purchase orders in Postgres (table pedidos).
type OrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var o entities.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

// List returns the orders matching filter, newest first.
func (r *OrderGormRepository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	err := orderFilterScope(r.db.WithContext(ctx), filter).
		Order("data_pedido DESC, numero").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus fails with ErrConditionFailed when no order has id.
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrConditionFailed
	}
	return nil
}

func orderFilterScope(db *gorm.DB, f entities.OrderFilter) *gorm.DB {
	q := db.Model(&entities.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.SupplierID != "" {
		q = q.Where("fornecedor_id = ?", f.SupplierID)
	}
	if f.CostCenter != "" {
		q = q.Where("centro_custo = ?", f.CostCenter)
	}
	if f.From != nil {
		q = q.Where("data_pedido >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("data_pedido <= ?", *f.To)
	}
	return q
}
