package interfaces

import (
	"context"
	"suprimentos/internal/domain/entities"
)

// IRequisitionHistoryRepository appends and reads historico_requisicao lines.

type IRequisitionHistoryRepository interface {
	Append(ctx context.Context, h entities.RequisitionHistory) error
	ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.RequisitionHistory, error)
}
