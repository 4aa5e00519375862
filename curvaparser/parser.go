// Package curvaparser reconstructs product records from the text layer of a
// Lince "Curva ABC" point-of-sale report. The input is raw page-concatenated
// text as extracted from the PDF; the output is one aggregated record per
// product name, sorted by value descending.
package curvaparser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Product is one aggregated report row.
type Product struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
}

// boilerplateMarkers suppress the whole line when found anywhere in it.
// Deliberately aggressive: a product name containing "CST" as a substring is
// an accepted false negative in exchange for reliably dropping headers,
// footers and department/grand totals.
var boilerplateMarkers = []string{
	"Curva ABC",
	"Período",
	"CST",
	"ECF",
	"Situação Tributária",
	"Classif.",
	"Codigo",
	"CÓDIGO",
	"Barras",
	"Total do Departamento",
	"Total Geral",
	"www.grupotecnoweb.com.br",
}

var (
	whitespaceRun = regexp.MustCompile(`\s{2,}`)
	numericToken  = regexp.MustCompile(`^[0-9][0-9.,]*$`)
	digitsOnly    = regexp.MustCompile(`^[0-9]+$`)
)

// Parser runs the line pipeline: normalize -> strip trailing codes ->
// repair wrapped lines -> extract per-line records -> aggregate. It holds
// no state between calls; Parse is a pure function of its input.
type Parser struct {
	strategy FieldStrategy
}

func New() *Parser {
	return &Parser{strategy: DecimalPlacesStrategy{}}
}

// NewWithStrategy builds a parser with a custom quantity/value policy,
// for report layouts the default decimal-places convention does not cover.
func NewWithStrategy(strategy FieldStrategy) *Parser {
	return &Parser{strategy: strategy}
}

// Parse converts report text into aggregated products. Lines that do not
// form a complete row (missing numbers, no alphabetic name, negative
// amounts) are silently dropped; an unrecognized document yields an empty
// slice, never an error.
func (p *Parser) Parse(text string) []Product {
	lines := NormalizeLines(text)
	for i, line := range lines {
		lines[i] = stripTrailingCodes(line)
	}
	rows := repairWraps(lines)

	var ordered []*Product
	index := make(map[string]*Product)
	for _, row := range rows {
		rec, ok := p.extractRecord(row)
		if !ok {
			continue
		}
		if existing, seen := index[rec.Name]; seen {
			existing.Quantity += rec.Quantity
			existing.Value += rec.Value
			continue
		}
		added := rec
		index[rec.Name] = &added
		ordered = append(ordered, &added)
	}

	products := make([]Product, len(ordered))
	for i, rec := range ordered {
		products[i] = *rec
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Value > products[j].Value
	})
	return products
}

// NormalizeLines splits text into trimmed, whitespace-collapsed lines with
// empties and boilerplate lines removed.
func NormalizeLines(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
		if line == "" || containsBoilerplate(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func containsBoilerplate(line string) bool {
	for _, marker := range boilerplateMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// stripTrailingCodes removes item codes the report prints at the end of a
// row: first a trailing 8-13 digit barcode/EAN, then a trailing 4-8 digit
// internal code. Each is stripped independently if present. Runs before
// wrap repair so that codes at line boundaries do not inflate the numeric
// tail of an incomplete line.
func stripTrailingCodes(line string) string {
	tokens := strings.Fields(line)
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if digitsOnly.MatchString(last) && len(last) >= 8 && len(last) <= 13 {
			tokens = tokens[:n-1]
		}
	}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if digitsOnly.MatchString(last) && len(last) >= 4 && len(last) <= 8 {
			tokens = tokens[:n-1]
		}
	}
	return strings.Join(tokens, " ")
}

// repairWraps re-joins report rows the extractor split across two physical
// lines. A line whose numeric tail is shorter than the two numbers a
// complete row needs is merged with the next line when that line is mostly
// (>=50%) numeric tokens. Single forward pass, at most one merge per line.
func repairWraps(lines []string) []string {
	var out []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if i+1 < len(lines) && tailLen(strings.Fields(line)) < 2 && mostlyNumeric(lines[i+1]) {
			out = append(out, line+" "+lines[i+1])
			i++
			continue
		}
		out = append(out, line)
	}
	return out
}

// tailLen is the length of the trailing contiguous run of numeric tokens.
func tailLen(tokens []string) int {
	n := 0
	for i := len(tokens) - 1; i >= 0; i-- {
		if !numericToken.MatchString(tokens[i]) {
			break
		}
		n++
	}
	return n
}

func mostlyNumeric(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	numeric := 0
	for _, tok := range tokens {
		if numericToken.MatchString(tok) {
			numeric++
		}
	}
	return numeric*2 >= len(tokens)
}

// extractRecord turns one repaired row into a product record. The trailing
// numeric tokens form the tail; the field strategy decides which of them is
// quantity and which is value. Everything before the tail, minus stray
// numeric tokens, is the product name.
func (p *Parser) extractRecord(line string) (Product, bool) {
	tokens := strings.Fields(line)

	// Leading 3-6 digit token is the internal item code column.
	if len(tokens) > 0 && digitsOnly.MatchString(tokens[0]) &&
		len(tokens[0]) >= 3 && len(tokens[0]) <= 6 {
		tokens = tokens[1:]
	}

	// Barcodes occasionally survive mid-line; 12+ digit tokens are never
	// quantities or values.
	filtered := tokens[:0]
	for _, tok := range tokens {
		if digitsOnly.MatchString(tok) && len(tok) >= 12 {
			continue
		}
		filtered = append(filtered, tok)
	}
	tokens = filtered

	tail := tailLen(tokens)
	if tail < 2 || tail == len(tokens) {
		return Product{}, false
	}
	head, tailTokens := tokens[:len(tokens)-tail], tokens[len(tokens)-tail:]

	qty, val, ok := p.strategy.Disambiguate(tailTokens)
	if !ok {
		return Product{}, false
	}

	var nameParts []string
	for _, tok := range head {
		if numericToken.MatchString(tok) {
			continue
		}
		nameParts = append(nameParts, tok)
	}
	name := strings.Join(nameParts, " ")
	if !hasLetter(name) {
		return Product{}, false
	}

	return Product{Name: name, Quantity: qty, Value: val}, true
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
