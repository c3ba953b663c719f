// Package sourcing compares supplier proposals against an RFP item template.
// Everything here is pure: no I/O, no shared state.
package sourcing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"suprimentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrNotEnoughBids = errors.New("not enough complete bids")
	ErrNoItems       = errors.New("rfp has no items")
)

const (
	BadgeMelhorOferta = "melhor_oferta"
	BadgeRanking      = "ranking"
)

var hundred = decimal.NewFromInt(100)

// Weights of the final score. They are used as given; callers keep them summing to 1.
type Weights struct {
	Technical decimal.Decimal
	Price     decimal.Decimal
}

func DefaultWeights() Weights {
	return Weights{Technical: decimal.RequireFromString("0.4"), Price: decimal.RequireFromString("0.6")}
}

// Cell is one proposal's answer for one RFP item.
type Cell struct {
	ProposalID   string           `json:"proposal_id"`
	SupplierName string           `json:"supplier_name"`
	Quoted       bool             `json:"quoted"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	TotalPrice   *decimal.Decimal `json:"total_price,omitempty"`
	TaxPercent   *decimal.Decimal `json:"tax_percent,omitempty"`
	LeadTimeDays int              `json:"lead_time_days,omitempty"`
	IsBest       bool             `json:"is_best"`
}

// ItemComparison aggregates all proposals for one RFP item. BestPrice and
// Variance are nil when nobody quoted the item.
type ItemComparison struct {
	Item             entities.RFPItem `json:"item"`
	Cells            []Cell           `json:"cells"`
	QuotedCount      int              `json:"quoted_count"`
	BestPrice        *decimal.Decimal `json:"best_price"`
	BestProposalID   string           `json:"best_proposal_id,omitempty"`
	BestSupplierName string           `json:"best_supplier_name,omitempty"`
	Variance         *decimal.Decimal `json:"variance_percent"`
	Coverage         decimal.Decimal  `json:"coverage"`
}

// ProposalSummary is the ranked view of one proposal.
type ProposalSummary struct {
	ProposalID      string          `json:"proposal_id"`
	SupplierID      string          `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name"`
	Total           decimal.Decimal `json:"total"`
	QuotedItems     int             `json:"quoted_items"`
	Complete        bool            `json:"complete"`
	MaxLeadTimeDays int             `json:"max_lead_time_days"`
	TechnicalScore  decimal.Decimal `json:"technical_score"`
	PriceScore      decimal.Decimal `json:"price_score"`
	FinalScore      decimal.Decimal `json:"final_score"`
	Rank            int             `json:"rank"`
	Badge           string          `json:"badge"`
	LowestPrice     bool            `json:"menor_preco"`

	order int
}

// Comparison is the full side-by-side view. Proposals are sorted by rank.
type Comparison struct {
	Items     []ItemComparison  `json:"items"`
	Proposals []ProposalSummary `json:"proposals"`
}

// Compare matches every template item against every proposal and ranks the proposals.
func Compare(proposals []entities.Proposal, items []entities.RFPItem, w Weights) Comparison {
	summaries := make([]ProposalSummary, len(proposals))
	for i, p := range proposals {
		summaries[i] = ProposalSummary{
			ProposalID:     p.ID,
			SupplierID:     p.SupplierID,
			SupplierName:   p.SupplierName,
			Total:          decimal.Zero,
			TechnicalScore: p.TechnicalScore,
			order:          i,
		}
	}

	matches := make([][]int, len(proposals))
	for i, p := range proposals {
		matches[i] = MatchItems(p.Items, items)
	}

	out := Comparison{Items: make([]ItemComparison, 0, len(items))}
	for k, item := range items {
		ic := ItemComparison{Item: item, Cells: make([]Cell, 0, len(proposals)), Coverage: decimal.Zero}
		var minPrice, maxPrice *decimal.Decimal
		bestCell := -1

		for i, p := range proposals {
			cell := Cell{ProposalID: p.ID, SupplierName: p.SupplierName}
			if m := matches[i][k]; m >= 0 {
				pi := p.Items[m]
				unit, total, tax := pi.UnitPrice, pi.TotalPrice, pi.TaxPercent
				cell.Quoted = true
				cell.UnitPrice, cell.TotalPrice, cell.TaxPercent = &unit, &total, &tax
				cell.LeadTimeDays = pi.LeadTimeDays

				ic.QuotedCount++
				summaries[i].QuotedItems++
				summaries[i].Total = summaries[i].Total.Add(total)
				if pi.LeadTimeDays > summaries[i].MaxLeadTimeDays {
					summaries[i].MaxLeadTimeDays = pi.LeadTimeDays
				}

				if minPrice == nil || total.LessThan(*minPrice) {
					minPrice = &total
					bestCell = len(ic.Cells)
				}
				if maxPrice == nil || total.GreaterThan(*maxPrice) {
					maxPrice = &total
				}
			}
			ic.Cells = append(ic.Cells, cell)
		}

		if bestCell >= 0 {
			ic.Cells[bestCell].IsBest = true
			ic.BestPrice = minPrice
			ic.BestProposalID = ic.Cells[bestCell].ProposalID
			ic.BestSupplierName = ic.Cells[bestCell].SupplierName
			ic.Variance = Variance(*minPrice, *maxPrice)
		}
		if len(proposals) > 0 {
			ic.Coverage = decimal.NewFromInt(int64(ic.QuotedCount)).
				Div(decimal.NewFromInt(int64(len(proposals)))).Round(4)
		}
		out.Items = append(out.Items, ic)
	}

	for i := range summaries {
		summaries[i].Complete = summaries[i].QuotedItems == len(items)
	}
	score(summaries, w)
	out.Proposals = summaries
	return out
}

// Variance returns (max - min) / min * 100, or nil when min is zero.
func Variance(minPrice, maxPrice decimal.Decimal) *decimal.Decimal {
	if minPrice.IsZero() {
		return nil
	}
	v := maxPrice.Sub(minPrice).Mul(hundred).Div(minPrice).Round(2)
	return &v
}

// MatchItems pairs each template item with at most one proposal line and
// returns, per template item, the index into items or -1. Case and whitespace
// are ignored. Exact descriptions are paired first; the remaining template
// items, longest description first, take the first unused line where either
// text contains the other. A line is never used twice.
func MatchItems(items []entities.ProposalItem, template []entities.RFPItem) []int {
	got := make([]string, len(items))
	for j, it := range items {
		got[j] = normalize(it.Description)
	}
	want := make([]string, len(template))
	out := make([]int, len(template))
	for k, t := range template {
		want[k] = normalize(t.Description)
		out[k] = -1
	}
	used := make([]bool, len(items))

	for k := range template {
		if want[k] == "" {
			continue
		}
		for j := range items {
			if !used[j] && got[j] == want[k] {
				out[k], used[j] = j, true
				break
			}
		}
	}

	pending := make([]int, 0, len(template))
	for k := range template {
		if out[k] < 0 && want[k] != "" {
			pending = append(pending, k)
		}
	}
	sort.SliceStable(pending, func(a, b int) bool {
		return len(want[pending[a]]) > len(want[pending[b]])
	})
	for _, k := range pending {
		for j := range items {
			if used[j] || got[j] == "" {
				continue
			}
			if strings.Contains(got[j], want[k]) || strings.Contains(want[k], got[j]) {
				out[k], used[j] = j, true
				break
			}
		}
	}
	return out
}

// Award is the outcome of the 3-Bids & Buy flow.
type Award struct {
	Winner ProposalSummary   `json:"winner"`
	Bids   []ProposalSummary `json:"bids"`
}

// AutoAward buys from the cheapest complete bid once at least minBids
// proposals quoted every item. Ties go to the shorter lead time, then input order.
func AutoAward(proposals []entities.Proposal, items []entities.RFPItem, minBids int, w Weights) (Award, error) {
	if len(items) == 0 {
		return Award{}, ErrNoItems
	}
	cmp := Compare(proposals, items, w)

	complete := make([]ProposalSummary, 0, len(cmp.Proposals))
	for _, s := range cmp.Proposals {
		if s.Complete {
			complete = append(complete, s)
		}
	}
	if len(complete) < minBids {
		return Award{}, fmt.Errorf("%w: got %d, need %d", ErrNotEnoughBids, len(complete), minBids)
	}

	sort.SliceStable(complete, func(i, j int) bool {
		a, b := complete[i], complete[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.LessThan(b.Total)
		}
		if a.MaxLeadTimeDays != b.MaxLeadTimeDays {
			return a.MaxLeadTimeDays < b.MaxLeadTimeDays
		}
		return a.order < b.order
	})
	return Award{Winner: complete[0], Bids: complete}, nil
}

func score(summaries []ProposalSummary, w Weights) {
	var lowest *decimal.Decimal
	for i := range summaries {
		if !summaries[i].Complete {
			continue
		}
		if lowest == nil || summaries[i].Total.LessThan(*lowest) {
			t := summaries[i].Total
			lowest = &t
		}
	}

	for i := range summaries {
		s := &summaries[i]
		s.PriceScore = decimal.Zero
		if s.Complete && lowest != nil {
			if s.Total.IsZero() {
				s.PriceScore = hundred
			} else {
				s.PriceScore = lowest.Mul(hundred).Div(s.Total).Round(2)
			}
			s.LowestPrice = s.Total.Equal(*lowest)
		}
		s.FinalScore = w.Technical.Mul(s.TechnicalScore).Add(w.Price.Mul(s.PriceScore)).Round(2)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if !a.FinalScore.Equal(b.FinalScore) {
			return a.FinalScore.GreaterThan(b.FinalScore)
		}
		if !a.Total.Equal(b.Total) {
			return a.Total.LessThan(b.Total)
		}
		return a.order < b.order
	})
	for i := range summaries {
		summaries[i].Rank = i + 1
		summaries[i].Badge = BadgeRanking
		if i == 0 {
			summaries[i].Badge = BadgeMelhorOferta
		}
	}
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
