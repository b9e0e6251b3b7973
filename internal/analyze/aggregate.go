package analyze

import "github.com/adlens/campaign-brief-go/internal/models"

// KeyFunc assigns a record to a partition. A constant function yields the
// overall summary; Record.Platform yields the per-platform summaries.
type KeyFunc func(models.Record) string

// Aggregate accumulates the five raw counters per key in a single pass and
// then re-derives the four ratios from the sums. Averaging per-row ratios
// would be wrong (two rows 10/100 and 5/10 give CTR 15/110, not 0.30).
// The returned slice lists keys in first-seen order; summing is commutative
// so reordering the input never changes any summary.
func Aggregate(records []models.Record, key KeyFunc) (map[string]models.Summary, []string) {
	acc := make(map[string]*models.Summary, 4)
	var order []string

	for _, r := range records {
		k := key(r)
		s, ok := acc[k]
		if !ok {
			s = &models.Summary{}
			acc[k] = s
			order = append(order, k)
		}
		s.Impressions += r.Impressions
		s.Clicks += r.Clicks
		s.Conversions += r.Conversions
		s.Spend += r.Spend
		s.Revenue += r.Revenue
	}

	out := make(map[string]models.Summary, len(acc))
	for k, s := range acc {
		s.CTR, s.CPC, s.CPA, s.ROAS = Ratios(s.Impressions, s.Clicks, s.Conversions, s.Spend, s.Revenue)
		out[k] = *s
	}
	return out, order
}
