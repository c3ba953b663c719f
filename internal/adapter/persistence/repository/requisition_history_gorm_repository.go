package repository

import (
	"context"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// RequisitionHistoryGormRepository appends audit lines to historico_requisicao.
type RequisitionHistoryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IRequisitionHistoryRepository = (*RequisitionHistoryGormRepository)(nil)

func NewRequisitionHistoryGormRepository(db *gorm.DB) *RequisitionHistoryGormRepository {
	return &RequisitionHistoryGormRepository{db: db}
}

func (r *RequisitionHistoryGormRepository) Append(ctx context.Context, h entities.RequisitionHistory) error {
	return r.db.WithContext(ctx).Create(&h).Error
}

func (r *RequisitionHistoryGormRepository) ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.RequisitionHistory, error) {
	lines := make([]entities.RequisitionHistory, 0)
	err := r.db.WithContext(ctx).
		Where("requisicao_id = ?", requisitionID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
