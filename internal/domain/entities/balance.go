package entities

import "github.com/shopspring/decimal"

// BalanceStatus is the alert tier of a budget.
type BalanceStatus string

const (
	BalanceStatusNormal  BalanceStatus = "normal"
	BalanceStatusAtencao BalanceStatus = "atencao"
	BalanceStatusCritico BalanceStatus = "critico"
)

// Balance is the read projection of a budget used by requisition screens and
// the alert sweep. Found is false for the fail-closed sentinel returned when
// no budget row exists.
type Balance struct {
	BudgetID    string          `json:"budget_id,omitempty"`
	CostCenter  string          `json:"cost_center"`
	Project     string          `json:"project,omitempty"`
	Category    string          `json:"category,omitempty"`
	Year        int             `json:"year"`
	Total       decimal.Decimal `json:"total"`
	Used        decimal.Decimal `json:"used"`
	Reserved    decimal.Decimal `json:"reserved"`
	Available   decimal.Decimal `json:"available"`
	PercentUsed decimal.Decimal `json:"percent_used"`
	Status      BalanceStatus   `json:"status"`
	Found       bool            `json:"found"`
}
