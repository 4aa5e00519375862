package service

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/gfmartins/curva-abc-export/curvaparser"
	"github.com/gfmartins/curva-abc-export/dto"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the downstream spreadsheet consumers read.
const SheetName = "Produtos"

// exportHeaders is the fixed column contract. Order and spelling must not
// change: the produced file feeds an existing downstream sheet.
var exportHeaders = []string{"nome do produto", "setor", "mês", "semana", "quantidade", "valor"}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook renders the selected records into an .xlsx workbook and
// returns its bytes. Records are filtered to the selected names, ordered
// (value descending unless the request says otherwise), and written with
// 3-decimal quantities and 2-decimal values using grouped number formats.
func (s *ExportService) BuildWorkbook(req *dto.ExportRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(req.Selected))
	for _, name := range req.Selected {
		selected[name] = true
	}

	var rows []dto.ProductRecord
	for _, rec := range req.Records {
		if selected[rec.Name] {
			rows = append(rows, rec)
		}
	}
	if len(rows) == 0 {
		return nil, dto.ErrEmptySelection
	}

	sortRecords(rows, curvaparser.Order(req.Order))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close workbook: %v", err)
		}
	}()
	f.SetSheetName(f.GetSheetName(0), SheetName)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, err
		}
	}

	qtyStyle, err := numberStyle(f, "#,##0.000")
	if err != nil {
		return nil, err
	}
	valStyle, err := numberStyle(f, "#,##0.00")
	if err != nil {
		return nil, err
	}

	for i, rec := range rows {
		rowNum := i + 2
		values := []interface{}{
			rec.Name,
			req.Sector,
			req.Month,
			req.Week,
			round(rec.Quantity, 3),
			round(rec.Value, 2),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}

		qtyCell, _ := excelize.CoordinatesToCellName(5, rowNum)
		valCell, _ := excelize.CoordinatesToCellName(6, rowNum)
		if err := f.SetCellStyle(SheetName, qtyCell, qtyCell, qtyStyle); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, valCell, valCell, valStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func numberStyle(f *excelize.File, format string) (int, error) {
	return f.NewStyle(&excelize.Style{CustomNumFmt: &format})
}

func round(v float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(v*factor) / factor
}

// sortRecords mirrors the parser-side orderings on already-built records.
func sortRecords(records []dto.ProductRecord, order curvaparser.Order) {
	switch order {
	case curvaparser.OrderQuantityDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Quantity > records[j].Quantity
		})
	case curvaparser.OrderNameAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Name < records[j].Name
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Value > records[j].Value
		})
	}
}
