package curvaparser

// FieldStrategy decides which numeric tail tokens of a report row hold the
// quantity and which the monetary value. Report variants disagree on column
// order, so the policy is pluggable per layout family.
type FieldStrategy interface {
	Disambiguate(tail []string) (quantity, value float64, ok bool)
}

// DecimalPlacesStrategy picks fields by decimal-place convention: Lince
// prints quantities with 3 decimal places and values with 2. The quantity
// is the rightmost tail token with exactly 3 places; the value is the first
// 2-place token after it. When the convention does not hold, it falls back
// to PositionalStrategy.
type DecimalPlacesStrategy struct{}

func (DecimalPlacesStrategy) Disambiguate(tail []string) (float64, float64, bool) {
	qtyIdx := -1
	var qty float64
	for i := len(tail) - 1; i >= 0; i-- {
		if DecimalPlaces(tail[i]) != 3 {
			continue
		}
		if v, ok := ParseNumber(tail[i]); ok {
			qtyIdx = i
			qty = v
			break
		}
	}

	if qtyIdx >= 0 {
		for j := qtyIdx + 1; j < len(tail); j++ {
			if DecimalPlaces(tail[j]) != 2 {
				continue
			}
			if v, ok := ParseNumber(tail[j]); ok {
				if qty < 0 || v < 0 {
					return 0, 0, false
				}
				return qty, v, true
			}
		}
	}

	return PositionalStrategy{}.Disambiguate(tail)
}

// PositionalStrategy assumes quantity-before-value column order:
// quantity is the second-to-last tail token, value the last. This is the
// fallback for report variants that lack a 3-decimal quantity column; its
// accuracy on such variants is unverified against the reporting tool.
type PositionalStrategy struct{}

func (PositionalStrategy) Disambiguate(tail []string) (float64, float64, bool) {
	if len(tail) < 2 {
		return 0, 0, false
	}
	qty, okQ := ParseNumber(tail[len(tail)-2])
	val, okV := ParseNumber(tail[len(tail)-1])
	if !okQ || !okV || qty < 0 || val < 0 {
		return 0, 0, false
	}
	return qty, val, true
}
