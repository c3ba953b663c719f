package entities

import "github.com/shopspring/decimal"

// RFPItem is one line of the sourcing event template.
type RFPItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
}

// ProposalItem is a supplier's price for one line, as typed by the supplier.
type ProposalItem struct {
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	TaxPercent   decimal.Decimal `json:"tax_percent"`
	LeadTimeDays int             `json:"lead_time_days"`
}

// Proposal (proposta) is a supplier's bid against an RFP. Scores and ranks
// live on the comparison result, not here.
type Proposal struct {
	ID             string          `json:"id"`
	SupplierID     string          `json:"supplier_id"`
	SupplierName   string          `json:"supplier_name"`
	Items          []ProposalItem  `json:"items"`
	TechnicalScore decimal.Decimal `json:"technical_score"`
}
