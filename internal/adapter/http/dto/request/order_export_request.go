package request

import (
	"errors"
	"strings"
	"time"

	"suprimentos/internal/domain/entities"
)

const dateLayout = "2006-01-02"

var ErrInvalidExportDate = errors.New("invalid export date, expected YYYY-MM-DD")

// OrderExportRequest is the filter payload of the exportar-pedidos route.
type OrderExportRequest struct {
	Format     string `json:"format" binding:"required"`
	Status     string `json:"status"`
	SupplierID string `json:"supplier_id"`
	CostCenter string `json:"cost_center"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// ToFilter parses the date range. To is inclusive: it covers the whole day.
func (r OrderExportRequest) ToFilter() (entities.OrderFilter, error) {
	filter := entities.OrderFilter{
		Status:     entities.OrderStatus(strings.TrimSpace(r.Status)),
		SupplierID: strings.TrimSpace(r.SupplierID),
		CostCenter: strings.TrimSpace(r.CostCenter),
	}
	if v := strings.TrimSpace(r.From); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			return entities.OrderFilter{}, ErrInvalidExportDate
		}
		filter.From = &from
	}
	if v := strings.TrimSpace(r.To); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			return entities.OrderFilter{}, ErrInvalidExportDate
		}
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	return filter, nil
}
