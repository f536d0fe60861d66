package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RankByKey returns a copy of items sorted descending by the numeric key.
// The sort is stable: records with equal keys keep their original relative
// order, which callers rely on because input order often reflects history.
func RankByKey[T any](items []T, key func(T) decimal.Decimal) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]).GreaterThan(key(ranked[j]))
	})
	return ranked
}

// TopN returns the first min(n, len) elements of an already ranked
// sequence. n <= 0 yields an empty sequence; n beyond the length yields the
// whole sequence.
func TopN[T any](ranked []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// RankVendorsByEarnings ranks vendor stats by total earnings, descending,
// ties broken by original order.
func RankVendorsByEarnings(vendors []VendorStat) []VendorStat {
	return RankByKey(vendors, func(v VendorStat) decimal.Decimal {
		return v.TotalEarnings
	})
}
