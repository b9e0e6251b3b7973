package models

// RawRecord es una fila plana tal como llega del upload (header -> valor).
type RawRecord map[string]any

// Record is a RawRecord plus coerced counters and derived ratios.
// Unrecognized input fields survive untouched in Fields.
type Record struct {
	Fields RawRecord `json:"fields"`

	Platform     string `json:"platform"`
	CampaignName string `json:"campaign_name"`
	Product      string `json:"product"`
	Variant      string `json:"variant"`

	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`

	CTR  float64 `json:"ctr"`
	CPC  float64 `json:"cpc"`
	CPA  float64 `json:"cpa"`
	ROAS float64 `json:"roas"`
}

// Summary holds counters summed over a partition of records, with the
// ratios re-derived from the sums (never averaged per row).
type Summary struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`

	CTR  float64 `json:"ctr"`
	CPC  float64 `json:"cpc"`
	CPA  float64 `json:"cpa"`
	ROAS float64 `json:"roas"`
}

// VariantStats is one arm of an A/B comparison.
type VariantStats struct {
	Label       string  `json:"label"`
	Conversions float64 `json:"conversions"`
	Trials      float64 `json:"trials"`
	Rate        float64 `json:"rate"`
}

// ABTestResult compares the first two variants discovered in a campaign group.
type ABTestResult struct {
	Platform     string `json:"platform"`
	CampaignName string `json:"campaign_name"`
	Product      string `json:"product,omitempty"`

	VariantA VariantStats `json:"variant_a"`
	VariantB VariantStats `json:"variant_b"`

	Z           float64 `json:"z"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// Analysis is the hand-off object for the brief builder and the transport:
// computed rows in input order, per-platform summaries, the overall summary
// and the discovered A/B tests. It carries no formatting concerns.
type Analysis struct {
	Records       []Record           `json:"records"`
	Platforms     map[string]Summary `json:"platforms"`
	PlatformOrder []string           `json:"platform_order"`
	Overall       Summary            `json:"overall"`
	ABTests       []ABTestResult     `json:"ab_tests"`
}
