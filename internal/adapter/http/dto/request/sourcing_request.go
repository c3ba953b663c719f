package request

import (
	"github.com/shopspring/decimal"

	"suprimentos/internal/domain/entities"
)

type RFPItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

type ProposalItemRequest struct {
	Description  string          `json:"description" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	TaxPercent   decimal.Decimal `json:"tax_percent"`
	LeadTimeDays int             `json:"lead_time_days"`
}

type ProposalRequest struct {
	ID             string                `json:"id" binding:"required"`
	SupplierID     string                `json:"supplier_id"`
	SupplierName   string                `json:"supplier_name"`
	TechnicalScore decimal.Decimal       `json:"technical_score"`
	Items          []ProposalItemRequest `json:"items" binding:"dive"`
}

// SourcingRequest is the body of both the comparison and the auto-award routes.
type SourcingRequest struct {
	Items     []RFPItemRequest  `json:"items" binding:"dive"`
	Proposals []ProposalRequest `json:"proposals" binding:"dive"`
}

func (r SourcingRequest) RFPItems() []entities.RFPItem {
	items := make([]entities.RFPItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.RFPItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return items
}

func (r SourcingRequest) ToProposals() []entities.Proposal {
	proposals := make([]entities.Proposal, 0, len(r.Proposals))
	for _, p := range r.Proposals {
		items := make([]entities.ProposalItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, entities.ProposalItem{
				Description:  it.Description,
				UnitPrice:    it.UnitPrice,
				TotalPrice:   it.TotalPrice,
				TaxPercent:   it.TaxPercent,
				LeadTimeDays: it.LeadTimeDays,
			})
		}
		proposals = append(proposals, entities.Proposal{
			ID:             p.ID,
			SupplierID:     p.SupplierID,
			SupplierName:   p.SupplierName,
			TechnicalScore: p.TechnicalScore,
			Items:          items,
		})
	}
	return proposals
}
