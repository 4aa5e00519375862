package curvaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessSectorPrefersDepartamentoLine(t *testing.T) {
	text := "Relatório de vendas PADARIA\nDepartamento: BEBIDAS\n"

	assert.Equal(t, "BEBIDAS", GuessSector(text, "relatorio.pdf"))
}

func TestGuessSectorFromText(t *testing.T) {
	text := "Vendas do setor HORTIFRUTI no período\n"

	assert.Equal(t, "HORTIFRUTI", GuessSector(text, "relatorio.pdf"))
}

func TestGuessSectorFromFilename(t *testing.T) {
	assert.Equal(t, "PADARIA", GuessSector("sem rótulo", "/tmp/curva_PADARIA_08.pdf"))
}

func TestGuessSectorFromFilenameKeyword(t *testing.T) {
	assert.Equal(t, "AÇOUGUE", GuessSector("sem rótulo", "vendas_carne_agosto.pdf"))
	assert.Equal(t, "BEBIDAS", GuessSector("sem rótulo", "CERVEJAS-SEMANA2.pdf"))
}

func TestGuessSectorDefault(t *testing.T) {
	assert.Equal(t, DefaultSector, GuessSector("nada aqui", "arquivo.pdf"))
}
