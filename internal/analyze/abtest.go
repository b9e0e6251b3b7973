package analyze

import "github.com/adlens/campaign-brief-go/internal/models"

// groupKey identifies a comparison group. Equality is exact and
// case-sensitive, including the empty-string default for product.
type groupKey struct {
	platform string
	campaign string
	product  string
}

type bucket struct {
	label       string
	conversions float64
	trials      float64
}

type group struct {
	key     groupKey
	buckets map[string]*bucket
	labels  []string // first-seen order decides which two variants get tested
}

// ABTests partitions records into comparison groups by (platform,
// campaign_name, product), then into variant buckets by label, and runs one
// two-proportion test per group that discovered at least two distinct labels.
// The first two labels seen are compared; later variants in the same group
// are ignored. A record's trial contribution is its clicks when positive,
// otherwise its impressions.
func ABTests(records []models.Record) []models.ABTestResult {
	groups := make(map[groupKey]*group)
	var order []groupKey

	for _, r := range records {
		k := groupKey{platform: r.Platform, campaign: r.CampaignName, product: r.Product}
		g, ok := groups[k]
		if !ok {
			g = &group{key: k, buckets: make(map[string]*bucket)}
			groups[k] = g
			order = append(order, k)
		}
		b, ok := g.buckets[r.Variant]
		if !ok {
			b = &bucket{label: r.Variant}
			g.buckets[r.Variant] = b
			g.labels = append(g.labels, r.Variant)
		}
		b.conversions += r.Conversions
		if r.Clicks > 0 {
			b.trials += r.Clicks
		} else {
			b.trials += r.Impressions
		}
	}

	var results []models.ABTestResult
	for _, k := range order {
		g := groups[k]
		if len(g.labels) < 2 {
			// un solo variant (o ninguno): no hay nada que comparar
			continue
		}
		a, b := g.buckets[g.labels[0]], g.buckets[g.labels[1]]
		tr := TwoProportionTest(a.conversions, a.trials, b.conversions, b.trials)
		results = append(results, models.ABTestResult{
			Platform:     k.platform,
			CampaignName: k.campaign,
			Product:      k.product,
			VariantA:     models.VariantStats{Label: a.label, Conversions: a.conversions, Trials: a.trials, Rate: tr.RateA},
			VariantB:     models.VariantStats{Label: b.label, Conversions: b.conversions, Trials: b.trials, Rate: tr.RateB},
			Z:            tr.Z,
			PValue:       tr.PValue,
			Significant:  tr.Significant,
		})
	}
	return results
}
