// Package analyze is the metrics-and-inference engine: numeric coercion,
// per-row ratios, multi-level aggregation and A/B significance testing over
// an in-memory batch of campaign records. It is a pure pipeline with no
// shared state, so concurrent batches never interfere.
package analyze

import (
	"errors"
	"fmt"

	"github.com/adlens/campaign-brief-go/internal/models"
)

// ErrEmptyBatch is the only error the engine raises: the input is not an
// ordered sequence of records. Per-field garbage never aborts a batch.
var ErrEmptyBatch = errors.New("batch must be a non-empty sequence of records")

// Ratios derives the four row metrics from coerced counters. A zero
// denominator yields exactly 0, never NaN or Inf.
func Ratios(impressions, clicks, conversions, spend, revenue float64) (ctr, cpc, cpa, roas float64) {
	ctr = safeDiv(clicks, impressions)
	cpc = safeDiv(spend, clicks)
	cpa = safeDiv(spend, conversions)
	roas = safeDiv(revenue, spend)
	return
}

// ComputeRecord coerces the five counters of one raw row, applies the field
// defaults (platform "unknown", variant "default", product "") and derives
// the row ratios. Unrecognized fields ride along in Fields.
func ComputeRecord(raw models.RawRecord) models.Record {
	rec := models.Record{
		Fields:       raw,
		Platform:     textField(raw, "platform", "unknown"),
		CampaignName: textField(raw, "campaign_name", ""),
		Product:      textField(raw, "product", ""),
		Variant:      textField(raw, "variant", "default"),
		Impressions:  Coerce(raw["impressions"]),
		Clicks:       Coerce(raw["clicks"]),
		Conversions:  Coerce(raw["conversions"]),
		Spend:        Coerce(raw["spend"]),
		Revenue:      Coerce(raw["revenue"]),
	}
	rec.CTR, rec.CPC, rec.CPA, rec.ROAS = Ratios(rec.Impressions, rec.Clicks, rec.Conversions, rec.Spend, rec.Revenue)
	return rec
}

// Compute runs the full pipeline over one batch: per-row metrics, per-platform
// and overall summaries, and A/B tests per campaign group. The result is a
// fresh self-contained object; nothing is retained between calls.
func Compute(batch []models.RawRecord) (*models.Analysis, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	records := make([]models.Record, 0, len(batch))
	for _, raw := range batch {
		records = append(records, ComputeRecord(raw))
	}

	platforms, order := Aggregate(records, func(r models.Record) string { return r.Platform })
	overall, _ := Aggregate(records, func(models.Record) string { return "overall" })

	return &models.Analysis{
		Records:       records,
		Platforms:     platforms,
		PlatformOrder: order,
		Overall:       overall["overall"],
		ABTests:       ABTests(records),
	}, nil
}

func textField(raw models.RawRecord, name, def string) string {
	v, ok := raw[name]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if s == "" {
		return def
	}
	return s
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
