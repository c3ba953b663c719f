package entities

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Budget is one yearly budget slice (orçamento) of a cost center, optionally
// narrowed by project and category.
//
// Storage model (DynamoDB):
//   - PK: id, built by BudgetKey from (cost_center, project, category, year)
//
// Amounts keep Available = Total - Used - Reserved on every write.
type Budget struct {
	ID         string          `json:"id"`
	CostCenter string          `json:"cost_center"`
	Category   string          `json:"category,omitempty"`
	Project    string          `json:"project,omitempty"`
	Year       int             `json:"year"`
	Total      decimal.Decimal `json:"total"`
	Used       decimal.Decimal `json:"used"`
	Reserved   decimal.Decimal `json:"reserved"`
	Available  decimal.Decimal `json:"available"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BudgetKey builds the deterministic budget id. Empty project/category stay
// as empty segments so "cc-1##cat#2026" and "cc-1#proj##2026" never collide.
func BudgetKey(costCenter, project, category string, year int) string {
	return strings.Join([]string{
		strings.TrimSpace(costCenter),
		strings.TrimSpace(project),
		strings.TrimSpace(category),
		strconv.Itoa(year),
	}, "#")
}

// RecomputeAvailable restores the ledger invariant after Total changes.
func (b *Budget) RecomputeAvailable() {
	b.Available = b.Total.Sub(b.Used).Sub(b.Reserved)
}
