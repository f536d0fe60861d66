package report

import "github.com/shopspring/decimal"

const (
	rankedVendorCount = 5
	vendorCardCount   = 3
)

var oneHundred = decimal.NewFromInt(100)

// DistributionSlice is one category of the ledger distribution, annotated
// with its share of the grand total.
type DistributionSlice struct {
	Category       EntryType       `json:"category"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Count          int             `json:"count"`
	PercentOfTotal decimal.Decimal `json:"percentOfTotal"`
}

// VendorSummary aggregates orders, revenue and earnings over the top-3
// vendor card subset. The scope is exactly the card subset, not the full
// ranked list and not the whole vendor set.
type VendorSummary struct {
	SumOrders   int64           `json:"sumOrders"`
	SumRevenue  decimal.Decimal `json:"sumRevenue"`
	SumEarnings decimal.Decimal `json:"sumEarnings"`
}

// VendorRanking is the top-vendors view: the ranked top-5 list, the top-3
// card subset, and the summary over the cards.
type VendorRanking struct {
	Ranked  []VendorStat  `json:"ranked"`
	Cards   []VendorStat  `json:"cards"`
	Summary VendorSummary `json:"summary"`
}

// Overview is the full derived report view for one snapshot. It is
// recomputed from scratch on every refresh; there is no incremental update
// and no caching.
type Overview struct {
	MonthlyRevenue     []MonthBucket       `json:"monthlyRevenue"`
	LedgerDistribution []DistributionSlice `json:"ledgerDistribution"`
	TopVendors         VendorRanking       `json:"topVendors"`
}

// FinancialSummary is the card row shown on the reports page. Fee fields
// are the canonical category totals; unknown entry types count toward the
// distribution's OTHER slice but not toward any named fee card.
type FinancialSummary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	AshoboxFees    decimal.Decimal `json:"ashoboxFees"`
	LogisticsFees  decimal.Decimal `json:"logisticsFees"`
	VendorEarnings decimal.Decimal `json:"vendorEarnings"`
	TotalOrders    int64           `json:"totalOrders"`
	ActiveVendors  int64           `json:"activeVendors"`
}

// Assemble derives all report views from one snapshot. The three outputs
// are computed together; a failed assembly leaves the caller's previous
// views intact because nothing is mutated before the error return.
func Assemble(snapshot Snapshot) (*Overview, error) {
	monthly, err := MonthlyRevenue(snapshot.Orders)
	if err != nil {
		return nil, err
	}

	return &Overview{
		MonthlyRevenue:     monthly,
		LedgerDistribution: LedgerDistribution(snapshot.Ledger),
		TopVendors:         TopVendorRanking(snapshot.Vendors),
	}, nil
}

// LedgerDistribution aggregates ledger entries by canonical entry type and
// annotates each category with its percentage of the grand total. When the
// grand total is zero every percentage is zero; the division is never
// attempted against a zero denominator.
func LedgerDistribution(entries []LedgerEntry) []DistributionSlice {
	canonical := make([]LedgerEntry, len(entries))
	copy(canonical, entries)
	for i := range canonical {
		canonical[i].EntryType = canonical[i].EntryType.Canonical()
	}

	totals := AggregateByType(canonical)

	grand := decimal.Zero
	for _, total := range totals {
		grand = grand.Add(total.TotalAmount)
	}

	slices := make([]DistributionSlice, len(totals))
	for i, total := range totals {
		percent := decimal.Zero
		if !grand.IsZero() {
			percent = total.TotalAmount.Div(grand).Mul(oneHundred)
		}
		slices[i] = DistributionSlice{
			Category:       total.Category,
			TotalAmount:    total.TotalAmount,
			Count:          total.Count,
			PercentOfTotal: percent,
		}
	}
	return slices
}

// TopVendorRanking ranks vendors by earnings and builds the top-5 list,
// the top-3 card subset and the card summary.
func TopVendorRanking(vendors []VendorStat) VendorRanking {
	ranked := RankVendorsByEarnings(vendors)
	top := TopN(ranked, rankedVendorCount)
	cards := TopN(top, vendorCardCount)

	summary := VendorSummary{
		SumRevenue:  decimal.Zero,
		SumEarnings: decimal.Zero,
	}
	for _, vendor := range cards {
		summary.SumOrders += vendor.TotalOrders
		summary.SumRevenue = summary.SumRevenue.Add(vendor.TotalRevenue)
		summary.SumEarnings = summary.SumEarnings.Add(vendor.TotalEarnings)
	}

	return VendorRanking{
		Ranked:  top,
		Cards:   cards,
		Summary: summary,
	}
}

// Summarize computes the financial summary cards from one snapshot. Unlike
// Assemble it never fails: no field depends on timestamp parsing.
func Summarize(snapshot Snapshot) FinancialSummary {
	summary := FinancialSummary{
		TotalRevenue:   decimal.Zero,
		AshoboxFees:    decimal.Zero,
		LogisticsFees:  decimal.Zero,
		VendorEarnings: decimal.Zero,
		TotalOrders:    int64(len(snapshot.Orders)),
	}

	for _, order := range snapshot.Orders {
		summary.TotalRevenue = summary.TotalRevenue.Add(order.TotalAmount)
	}

	for _, entry := range snapshot.Ledger {
		switch entry.EntryType.Canonical() {
		case EntryTypeAshobox:
			summary.AshoboxFees = summary.AshoboxFees.Add(entry.Amount)
		case EntryTypeLogistics:
			summary.LogisticsFees = summary.LogisticsFees.Add(entry.Amount)
		case EntryTypeVendor:
			summary.VendorEarnings = summary.VendorEarnings.Add(entry.Amount)
		}
	}

	for _, vendor := range snapshot.Vendors {
		if vendor.Status == VendorStatusApproved {
			summary.ActiveVendors++
		}
	}

	return summary
}
