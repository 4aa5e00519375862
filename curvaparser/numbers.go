package curvaparser

import (
	"strconv"
	"strings"
)

// ParseNumber converts a numeric token from a Lince report into a float.
// Reports mix two conventions: "1.234,56" (comma decimal, period thousands)
// and "3.491.40" (last period is the decimal, earlier ones thousands).
// A token with neither comma nor repeated periods is a plain decimal.
// Returns ok=false on anything unparseable; never panics.
func ParseNumber(token string) (float64, bool) {
	t := strings.TrimSpace(token)
	if t == "" {
		return 0, false
	}

	if strings.Contains(t, ",") {
		normalized := strings.ReplaceAll(t, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
		v, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	if strings.Count(t, ".") >= 2 {
		parts := strings.Split(t, ".")
		intPart := strings.Join(parts[:len(parts)-1], "")
		v, err := strconv.ParseFloat(intPart+"."+parts[len(parts)-1], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DecimalPlaces counts digits after the last separator occurrence in a
// numeric token, treating period and comma alike. "506,000" -> 3,
// "3.491.40" -> 2, "120" -> 0. Used to tell quantity (3 places) apart
// from monetary value (2 places).
func DecimalPlaces(token string) int {
	s := strings.ReplaceAll(token, ".", ",")
	if i := strings.LastIndex(s, ","); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
