package analyze

import "math"

// alpha is the fixed two-sided significance threshold. Not configurable.
const alpha = 0.05

// TestResult is the outcome of a two-proportion z-test. Degenerate inputs
// (zero trials, zero variance) come back as z=0, p=1, not significant —
// inspectable values, never an error.
type TestResult struct {
	Z           float64
	PValue      float64
	RateA       float64
	RateB       float64
	Significant bool
}

// TwoProportionTest compares two (successes, trials) pairs under the null
// hypothesis of equal rates, using the pooled standard error and a two-sided
// p-value from the standard normal CDF.
func TwoProportionTest(successesA, trialsA, successesB, trialsB float64) TestResult {
	res := TestResult{PValue: 1}
	if trialsA > 0 {
		res.RateA = successesA / trialsA
	}
	if trialsB > 0 {
		res.RateB = successesB / trialsB
	}
	if trialsA <= 0 || trialsB <= 0 {
		return res
	}

	pooled := (successesA + successesB) / (trialsA + trialsB)
	se := math.Sqrt(pooled * (1 - pooled) * (1/trialsA + 1/trialsB))
	if se == 0 {
		// pooled rate 0 o 1: sin varianza no hay efecto detectable
		return res
	}

	res.Z = (res.RateA - res.RateB) / se
	res.PValue = 2 * (1 - normalCDF(math.Abs(res.Z)))
	res.Significant = res.PValue < alpha
	return res
}

// normalCDF approximates the standard normal CDF via the Abramowitz & Stegun
// rational approximation of erf (Handbook of Mathematical Functions, 7.1.26,
// max absolute error ~1.5e-7). Closed form, no iteration.
func normalCDF(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	x = math.Abs(x) / math.Sqrt2

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)

	return 0.5 * (1.0 + sign*y)
}
