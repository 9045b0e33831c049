package seller

import "github.com/shopspring/decimal"

// MonthlyRevenue is one month of the year-to-date breakdown. Month is
// 1-based.
type MonthlyRevenue struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// RevenueSummary is the backend-computed revenue snapshot. All figures are
// recomputed server-side; the store holds the last fetched values exactly
// as received. Display rounding happens in Format helpers and never
// mutates the cached decimals.
type RevenueSummary struct {
	Day              decimal.Decimal  `json:"day"`
	Month            decimal.Decimal  `json:"month"`
	Year             decimal.Decimal  `json:"year"`
	MonthlyBreakdown []MonthlyRevenue `json:"monthlyBreakdown"`
}

// MonthTotal returns the breakdown total for a 1-based month, or zero when
// the backend omitted that month.
func (r RevenueSummary) MonthTotal(month int) decimal.Decimal {
	for _, m := range r.MonthlyBreakdown {
		if m.Month == month {
			return m.Total
		}
	}
	return decimal.Zero
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
