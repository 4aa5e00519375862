package service

import (
	"bytes"
	"testing"

	"github.com/gfmartins/curva-abc-export/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() *dto.ExportRequest {
	return &dto.ExportRequest{
		Records: []dto.ProductRecord{
			{Name: "PAO FRANCES KG", Quantity: 80.5, Value: 402.5},
			{Name: "CAFE COM LEITE 200ML", Quantity: 506, Value: 3491.4},
			{Name: "BOLO DE FUBA", Quantity: 12, Value: 96},
		},
		Selected: []string{"CAFE COM LEITE 200ML", "PAO FRANCES KG"},
		Sector:   "PADARIA",
		Month:    "08/2026",
		Week:     "2",
	}
}

func TestBuildWorkbook(t *testing.T) {
	data, err := NewExportService().BuildWorkbook(exportFixture())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	// Header + the two selected records; the unselected one is absent.
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"nome do produto", "setor", "mês", "semana", "quantidade", "valor"}, rows[0])

	// Value-descending order.
	assert.Equal(t, "CAFE COM LEITE 200ML", rows[1][0])
	assert.Equal(t, "PADARIA", rows[1][1])
	assert.Equal(t, "08/2026", rows[1][2])
	assert.Equal(t, "2", rows[1][3])
	assert.Equal(t, "506", rows[1][4])
	assert.Equal(t, "3491.4", rows[1][5])

	assert.Equal(t, "PAO FRANCES KG", rows[2][0])
}

func TestBuildWorkbookEmptySelection(t *testing.T) {
	req := exportFixture()
	req.Selected = []string{"NOME QUE NAO EXISTE"}

	_, err := NewExportService().BuildWorkbook(req)

	assert.ErrorIs(t, err, dto.ErrEmptySelection)
}

func TestBuildWorkbookValidatesRequest(t *testing.T) {
	_, err := NewExportService().BuildWorkbook(&dto.ExportRequest{})
	assert.Error(t, err)

	_, err = NewExportService().BuildWorkbook(&dto.ExportRequest{
		Records: []dto.ProductRecord{{Name: "X", Value: 1}},
	})
	assert.ErrorIs(t, err, dto.ErrEmptySelection)
}

func TestBuildWorkbookNameOrder(t *testing.T) {
	req := exportFixture()
	req.Selected = []string{"CAFE COM LEITE 200ML", "PAO FRANCES KG", "BOLO DE FUBA"}
	req.Order = "name"

	data, err := NewExportService().BuildWorkbook(req)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "BOLO DE FUBA", rows[1][0])
	assert.Equal(t, "CAFE COM LEITE 200ML", rows[2][0])
	assert.Equal(t, "PAO FRANCES KG", rows[3][0])
}
