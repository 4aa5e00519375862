package curvaparser

import (
	"regexp"
	"sort"
	"strings"
)

// Query is a multi-term product-name search: quoted terms are required
// exact substrings, terms prefixed with "-" are exclusions, the rest are
// includes combined with OR (default) or AND. All matching is
// case-insensitive substring matching, as in the report browser the
// operators are used to.
type Query struct {
	Includes []string
	Excludes []string
	Exact    []string
	MatchAll bool
}

var (
	quotedTerm    = regexp.MustCompile(`"([^"]+)"`)
	termSeparator = regexp.MustCompile(`[,;\n]+`)
)

// ParseQuery tokenizes a raw search expression like
// `"COCA COLA", cerveja; -zero` into a Query.
func ParseQuery(raw string, matchAll bool) Query {
	q := Query{MatchAll: matchAll}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return q
	}

	for _, m := range quotedTerm.FindAllStringSubmatch(raw, -1) {
		q.Exact = append(q.Exact, strings.ToUpper(m[1]))
	}
	rest := quotedTerm.ReplaceAllString(raw, " ")

	for _, chunk := range termSeparator.Split(rest, -1) {
		term := strings.TrimSpace(chunk)
		if term == "" {
			continue
		}
		if strings.HasPrefix(term, "-") && len(term) > 1 {
			q.Excludes = append(q.Excludes, strings.ToUpper(strings.TrimSpace(term[1:])))
		} else {
			q.Includes = append(q.Includes, strings.ToUpper(term))
		}
	}
	return q
}

// IsEmpty reports whether the query has no terms at all.
func (q Query) IsEmpty() bool {
	return len(q.Includes) == 0 && len(q.Excludes) == 0 && len(q.Exact) == 0
}

// Matches reports whether a product name satisfies the query.
func (q Query) Matches(name string) bool {
	n := strings.ToUpper(name)

	for _, exact := range q.Exact {
		if !strings.Contains(n, exact) {
			return false
		}
	}

	if len(q.Includes) > 0 {
		if q.MatchAll {
			for _, inc := range q.Includes {
				if !strings.Contains(n, inc) {
					return false
				}
			}
		} else {
			any := false
			for _, inc := range q.Includes {
				if strings.Contains(n, inc) {
					any = true
					break
				}
			}
			if !any {
				return false
			}
		}
	}

	for _, exc := range q.Excludes {
		if strings.Contains(n, exc) {
			return false
		}
	}
	return true
}

// FilterProducts returns the products whose names match the query,
// preserving order. An empty query keeps everything.
func FilterProducts(products []Product, q Query) []Product {
	if q.IsEmpty() {
		return products
	}
	var out []Product
	for _, p := range products {
		if q.Matches(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

// Order is a presentation ordering for parsed products.
type Order string

const (
	OrderValueDesc    Order = "value"
	OrderQuantityDesc Order = "quantity"
	OrderNameAsc      Order = "name"
)

// SortProducts orders products in place. Unknown orders fall back to
// value descending, the report's native ranking.
func SortProducts(products []Product, order Order) {
	switch order {
	case OrderQuantityDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity > products[j].Quantity
		})
	case OrderNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Value > products[j].Value
		})
	}
}
