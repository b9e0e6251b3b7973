package analyze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoProportionTestKnownInput(t *testing.T) {
	// 50/1000 vs 30/1000: pooled 0.04, se ~0.0087636, z ~2.2822
	res := TwoProportionTest(50, 1000, 30, 1000)

	assert.Equal(t, 0.05, res.RateA)
	assert.Equal(t, 0.03, res.RateB)
	assert.InDelta(t, 2.2821773229, res.Z, 1e-9)
	assert.InDelta(t, 0.0224788088, res.PValue, 1e-6)
	assert.True(t, res.Significant)
}

func TestTwoProportionTestZeroTrials(t *testing.T) {
	for _, tc := range []struct {
		name                 string
		sa, ta, sb, tb       float64
		wantRateA, wantRateB float64
	}{
		{"no trials A", 10, 0, 30, 1000, 0, 0.03},
		{"no trials B", 50, 1000, 10, 0, 0.05, 0},
		{"no trials at all", 0, 0, 0, 0, 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := TwoProportionTest(tc.sa, tc.ta, tc.sb, tc.tb)
			assert.Zero(t, res.Z)
			assert.Equal(t, 1.0, res.PValue)
			assert.False(t, res.Significant)
			assert.Equal(t, tc.wantRateA, res.RateA)
			assert.Equal(t, tc.wantRateB, res.RateB)
		})
	}
}

func TestTwoProportionTestZeroVariance(t *testing.T) {
	// pooled rate 0 y pooled rate 1: sin varianza, resultado degenerado
	for _, tc := range [][4]float64{{0, 100, 0, 200}, {100, 100, 200, 200}} {
		res := TwoProportionTest(tc[0], tc[1], tc[2], tc[3])
		assert.Zero(t, res.Z)
		assert.Equal(t, 1.0, res.PValue)
		assert.False(t, res.Significant)
	}
}

func TestTwoProportionTestSymmetry(t *testing.T) {
	ab := TwoProportionTest(50, 1000, 30, 1000)
	ba := TwoProportionTest(30, 1000, 50, 1000)
	assert.InDelta(t, ab.Z, -ba.Z, 1e-12)
	assert.InDelta(t, ab.PValue, ba.PValue, 1e-12)
}

func TestNormalCDFAccuracy(t *testing.T) {
	// la aproximación A&S 7.1.26 promete error máximo ~1.5e-7 vs erf exacta
	for x := -8.0; x <= 8.0; x += 0.001 {
		exact := 0.5 * (1 + math.Erf(x/math.Sqrt2))
		require.InDelta(t, exact, normalCDF(x), 1.5e-7, "x=%v", x)
	}
}

func TestNormalCDFAnchors(t *testing.T) {
	assert.InDelta(t, 0.5, normalCDF(0), 1e-7)
	assert.InDelta(t, 0.9750021049, normalCDF(1.96), 1e-6)
	assert.InDelta(t, 0.0249978951, normalCDF(-1.96), 1e-6)
}
