package analyze

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce converts an arbitrary cell value into a finite float64. It is total:
// nil and empty strings become 0, numbers pass through, everything else is
// stripped down to numeric runes and parsed, with 0 on failure. The sign is
// preserved so negative upstream data stays visible downstream.
func Coerce(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		return parseLoose(n)
	default:
		return parseLoose(fmt.Sprint(v))
	}
}

// parseLoose tolera ruido tipo "1,234.5 USD": conserva dígitos, punto,
// signo y marcador de exponente, y parsea lo que queda.
func parseLoose(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == 'e' || r == 'E' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
