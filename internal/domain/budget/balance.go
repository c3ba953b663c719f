// Package budget holds the pure balance arithmetic of the budget ledger.
package budget

import (
	"suprimentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// AttentionThreshold and CriticalThreshold are inclusive lower bounds, in percent.
	AttentionThreshold = decimal.NewFromInt(80)
	CriticalThreshold  = decimal.NewFromInt(90)
)

// PercentUsed returns (used + reserved) / total * 100. A budget without a
// positive total is fully used as soon as anything is committed against it.
func PercentUsed(total, used, reserved decimal.Decimal) decimal.Decimal {
	committed := used.Add(reserved)
	if !total.IsPositive() {
		if committed.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return committed.Mul(hundred).Div(total)
}

// Classify maps a utilization percentage to its alert tier.
func Classify(total, percentUsed decimal.Decimal) entities.BalanceStatus {
	switch {
	case !total.IsPositive():
		return entities.BalanceStatusCritico
	case percentUsed.GreaterThanOrEqual(CriticalThreshold):
		return entities.BalanceStatusCritico
	case percentUsed.GreaterThanOrEqual(AttentionThreshold):
		return entities.BalanceStatusAtencao
	default:
		return entities.BalanceStatusNormal
	}
}

// FromBudget projects a stored budget into its balance.
func FromBudget(b entities.Budget) entities.Balance {
	pct := PercentUsed(b.Total, b.Used, b.Reserved)
	return entities.Balance{
		BudgetID:    b.ID,
		CostCenter:  b.CostCenter,
		Project:     b.Project,
		Category:    b.Category,
		Year:        b.Year,
		Total:       b.Total,
		Used:        b.Used,
		Reserved:    b.Reserved,
		Available:   b.Total.Sub(b.Used).Sub(b.Reserved),
		PercentUsed: pct.Round(2),
		Status:      Classify(b.Total, pct),
		Found:       true,
	}
}

// Missing is the fail-closed balance reported when no budget row exists:
// zero everywhere and critical, so nothing downstream treats it as spendable.
func Missing(costCenter, project, category string, year int) entities.Balance {
	return entities.Balance{
		CostCenter:  costCenter,
		Project:     project,
		Category:    category,
		Year:        year,
		Total:       decimal.Zero,
		Used:        decimal.Zero,
		Reserved:    decimal.Zero,
		Available:   decimal.Zero,
		PercentUsed: hundred,
		Status:      entities.BalanceStatusCritico,
		Found:       false,
	}
}
