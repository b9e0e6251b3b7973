package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adlens/campaign-brief-go/internal/models"
)

func rec(platform string, impressions, clicks, conversions, spend, revenue float64) models.Record {
	r := models.Record{
		Platform:    platform,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Spend:       spend,
		Revenue:     revenue,
	}
	r.CTR, r.CPC, r.CPA, r.ROAS = Ratios(r.Impressions, r.Clicks, r.Conversions, r.Spend, r.Revenue)
	return r
}

func TestAggregateDerivesFromSumsNotRowAverages(t *testing.T) {
	// 10/100 y 5/10: el CTR global es 15/110, no el promedio de 0.10 y 0.50
	records := []models.Record{
		rec("meta", 100, 10, 0, 0, 0),
		rec("meta", 10, 5, 0, 0, 0),
	}
	out, order := Aggregate(records, func(r models.Record) string { return r.Platform })

	require.Equal(t, []string{"meta"}, order)
	s := out["meta"]
	assert.Equal(t, 110.0, s.Impressions)
	assert.Equal(t, 15.0, s.Clicks)
	assert.InDelta(t, 15.0/110.0, s.CTR, 1e-12)
	assert.NotEqual(t, 0.30, s.CTR) // guarda contra promediar ratios
}

func TestAggregateReorderInvariance(t *testing.T) {
	records := []models.Record{
		rec("meta", 1000, 50, 5, 100, 300),
		rec("google", 2000, 40, 2, 80, 100),
		rec("meta", 500, 25, 1, 60, 0),
		rec("tiktok", 300, 9, 0, 30, 0),
	}
	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}, {1, 3, 0, 2}}

	base, _ := Aggregate(records, func(r models.Record) string { return r.Platform })
	for _, p := range perms {
		shuffled := make([]models.Record, len(records))
		for i, idx := range p {
			shuffled[i] = records[idx]
		}
		out, _ := Aggregate(shuffled, func(r models.Record) string { return r.Platform })
		assert.Equal(t, base, out, "perm %v", p)
	}
}

func TestAggregateFirstSeenKeyOrder(t *testing.T) {
	records := []models.Record{
		rec("google", 1, 0, 0, 0, 0),
		rec("meta", 1, 0, 0, 0, 0),
		rec("google", 1, 0, 0, 0, 0),
		rec("tiktok", 1, 0, 0, 0, 0),
	}
	_, order := Aggregate(records, func(r models.Record) string { return r.Platform })
	assert.Equal(t, []string{"google", "meta", "tiktok"}, order)
}

func TestAggregateConstantKeyYieldsOverall(t *testing.T) {
	records := []models.Record{
		rec("meta", 1000, 50, 5, 100, 300),
		rec("google", 2000, 40, 2, 80, 100),
	}
	out, order := Aggregate(records, func(models.Record) string { return "overall" })

	require.Equal(t, []string{"overall"}, order)
	s := out["overall"]
	assert.Equal(t, 3000.0, s.Impressions)
	assert.Equal(t, 90.0, s.Clicks)
	assert.Equal(t, 180.0, s.Spend)
	assert.InDelta(t, 90.0/3000.0, s.CTR, 1e-12)
	assert.InDelta(t, 180.0/90.0, s.CPC, 1e-12)
	assert.InDelta(t, 400.0/180.0, s.ROAS, 1e-12)
}

func TestRatiosZeroDenominators(t *testing.T) {
	ctr, cpc, cpa, roas := Ratios(0, 0, 0, 0, 0)
	assert.Zero(t, ctr)
	assert.Zero(t, cpc)
	assert.Zero(t, cpa)
	assert.Zero(t, roas)

	// denominador cero con numerador positivo sigue siendo 0, nunca Inf
	ctr, cpc, cpa, roas = Ratios(0, 10, 0, 50, 200)
	assert.Zero(t, ctr)
	assert.Equal(t, 5.0, cpc)
	assert.Zero(t, cpa)
	assert.Equal(t, 4.0, roas)
}
