package curvaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompleteRow(t *testing.T) {
	products := New().Parse("CAFE COM LEITE 200ML 506,000 3491,40")

	require.Len(t, products, 1)
	assert.Equal(t, "CAFE COM LEITE 200ML", products[0].Name)
	assert.InDelta(t, 506.0, products[0].Quantity, 1e-9)
	assert.InDelta(t, 3491.4, products[0].Value, 1e-9)
}

func TestParseLineWrapRepair(t *testing.T) {
	text := "PRODUTO X\n10,500 250,00"

	products := New().Parse(text)

	require.Len(t, products, 1)
	assert.Equal(t, "PRODUTO X", products[0].Name)
	assert.InDelta(t, 10.5, products[0].Quantity, 1e-9)
	assert.InDelta(t, 250.0, products[0].Value, 1e-9)
}

func TestParseAggregatesDuplicateNames(t *testing.T) {
	text := `
		ARROZ AGULHINHA 5KG 10,000 100,00
		FEIJAO PRETO 1KG 2,000 20,00
		ARROZ AGULHINHA 5KG 5,000 50,00
	`

	products := New().Parse(text)

	require.Len(t, products, 2)
	assert.Equal(t, "ARROZ AGULHINHA 5KG", products[0].Name)
	assert.InDelta(t, 15.0, products[0].Quantity, 1e-9)
	assert.InDelta(t, 150.0, products[0].Value, 1e-9)
	assert.Equal(t, "FEIJAO PRETO 1KG", products[1].Name)
}

func TestParseSortsByValueDescending(t *testing.T) {
	text := `
		PRODUTO BARATO 1,000 10,00
		PRODUTO CARO 1,000 500,00
		PRODUTO MEDIO 1,000 50,00
	`

	products := New().Parse(text)

	require.Len(t, products, 3)
	for i := 0; i+1 < len(products); i++ {
		assert.GreaterOrEqual(t, products[i].Value, products[i+1].Value)
	}
	assert.Equal(t, "PRODUTO CARO", products[0].Name)
}

func TestParseIsDeterministic(t *testing.T) {
	text := `
		QUEIJO MINAS KG 3,500 120,00
		PRESUNTO FATIADO 2,000 60,00
		QUEIJO MINAS KG 1,500 40,00
	`

	first := New().Parse(text)
	second := New().Parse(text)

	assert.Equal(t, first, second)
}

func TestParseRejectsLinesWithoutName(t *testing.T) {
	text := `
		123456 7891234567890
		1,000 10,00 4521
		999999999999
	`

	assert.Empty(t, New().Parse(text))
}

func TestParseSuppressesBoilerplate(t *testing.T) {
	text := `
		Curva ABC de Vendas 1,000 999,99
		Total Geral 500,000 99999,99
		www.grupotecnoweb.com.br
		COCA COLA 2L 20,000 300,00
		Total do Departamento 100,000 5000,00
	`

	products := New().Parse(text)

	require.Len(t, products, 1)
	assert.Equal(t, "COCA COLA 2L", products[0].Name)
}

func TestParseStripsTrailingCodes(t *testing.T) {
	// Row ends with an internal item code and a barcode; both must be
	// stripped before the numeric tail is read.
	text := "LEITE INTEGRAL 1L 30,000 150,00 45210 7894900011517"

	products := New().Parse(text)

	require.Len(t, products, 1)
	assert.Equal(t, "LEITE INTEGRAL 1L", products[0].Name)
	assert.InDelta(t, 30.0, products[0].Quantity, 1e-9)
	assert.InDelta(t, 150.0, products[0].Value, 1e-9)
}

func TestParseStripsLeadingItemCode(t *testing.T) {
	text := "4521 PAO FRANCES KG 80,500 402,50"

	products := New().Parse(text)

	require.Len(t, products, 1)
	assert.Equal(t, "PAO FRANCES KG", products[0].Name)
	assert.InDelta(t, 80.5, products[0].Quantity, 1e-9)
}

func TestParseStripsEmbeddedBarcode(t *testing.T) {
	text := "MORTADELA DEFUMADA 789123456789012 12,000 48,00"

	products := New().Parse(text)

	require.Len(t, products, 1)
	assert.Equal(t, "MORTADELA DEFUMADA", products[0].Name)
	assert.InDelta(t, 12.0, products[0].Quantity, 1e-9)
	assert.InDelta(t, 48.0, products[0].Value, 1e-9)
}

func TestParseMultiColumnTail(t *testing.T) {
	// Tail carries quantity, unit price and total. The quantity is the
	// 3-decimal token; the value is the first 2-decimal token after it.
	text := "AZEITE EXTRA VIRGEM 500ML 2,000 15,90 31,80"

	products := New().Parse(text)

	require.Len(t, products, 1)
	assert.InDelta(t, 2.0, products[0].Quantity, 1e-9)
	assert.InDelta(t, 15.9, products[0].Value, 1e-9)
}

func TestParsePositionalFallback(t *testing.T) {
	// No 3-decimal token anywhere: falls back to second-to-last/last.
	text := "SACOLA PLASTICA 120 35,90"

	products := New().Parse(text)

	require.Len(t, products, 1)
	assert.InDelta(t, 120.0, products[0].Quantity, 1e-9)
	assert.InDelta(t, 35.9, products[0].Value, 1e-9)
}

func TestParseEmptyDocument(t *testing.T) {
	assert.Empty(t, New().Parse(""))
	assert.Empty(t, New().Parse("\n\n   \n"))
}

func TestNormalizeLinesCollapsesWhitespace(t *testing.T) {
	lines := NormalizeLines("  ARROZ   AGULHINHA    10,000   100,00  \n\n")

	require.Len(t, lines, 1)
	assert.Equal(t, "ARROZ AGULHINHA 10,000 100,00", lines[0])
}
