package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrInvalidExportFilter     = errors.New("invalid export filter")
)

// OrderExportHeaders is the fixed column order of every order export.
var OrderExportHeaders = []string{"Número", "Fornecedor", "Centro de Custo", "Status", "Valor Total", "Data do Pedido"}

const orderExportTitle = "Relatório de Pedidos"

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
	Rows        int
}

type IOrderExportUseCase interface {
	ExportOrders(ctx context.Context, filter entities.OrderFilter, format string) (ExportFile, error)
}

type OrderExportUseCase struct {
	repo      interfaces.IOrderRepository
	renderers map[string]interfaces.ITableRenderer
	logger    *zap.Logger
	now       func() time.Time
}

var _ IOrderExportUseCase = (*OrderExportUseCase)(nil)

// NewOrderExportUseCase builds the use case. renderers are keyed by format name (csv, xlsx, pdf).
func NewOrderExportUseCase(repo interfaces.IOrderRepository, renderers map[string]interfaces.ITableRenderer, logger *zap.Logger) *OrderExportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderExportUseCase{repo: repo, renderers: renderers, logger: logger, now: time.Now}
}

func (u *OrderExportUseCase) ExportOrders(ctx context.Context, filter entities.OrderFilter, format string) (ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	renderer, ok := u.renderers[format]
	if !ok {
		return ExportFile{}, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return ExportFile{}, fmt.Errorf("%w: date range ends before it starts", ErrInvalidExportFilter)
	}

	orders, err := u.repo.List(ctx, filter)
	if err != nil {
		u.logger.Error("[order-export][usecase] list orders failed", zap.Error(err))
		return ExportFile{}, err
	}

	content, err := renderer.Render(orderExportTitle, OrderExportHeaders, OrderRows(orders))
	if err != nil {
		u.logger.Error("[order-export][usecase] render failed", zap.String("format", format), zap.Error(err))
		return ExportFile{}, err
	}

	name := fmt.Sprintf("pedidos_%s.%s", u.now().UTC().Format("20060102_150405"), renderer.Extension())
	u.logger.Info("[order-export][usecase] orders exported",
		zap.String("format", format), zap.Int("rows", len(orders)), zap.String("file", name))
	return ExportFile{
		FileName:    name,
		ContentType: renderer.ContentType(),
		Content:     content,
		Rows:        len(orders),
	}, nil
}

// OrderRows flattens orders into cells following OrderExportHeaders.
func OrderRows(orders []entities.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.Number,
			o.SupplierName,
			o.CostCenter,
			string(o.Status),
			o.Total.StringFixed(2),
			o.OrderedAt.Format("02/01/2006"),
		})
	}
	return rows
}
