package service

import (
	"log"
	"time"

	"github.com/gfmartins/curva-abc-export/curvaparser"
	"github.com/gfmartins/curva-abc-export/dto"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// brPrinter renders quantities and values the way the reports print them:
// "." grouping, "," decimals.
var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseOptions are the caller-side knobs for a parse request.
type ParseOptions struct {
	Query    string
	MatchAll bool
	Order    curvaparser.Order
}

type ReportService struct {
	pdfProcessor  PDFProcessor
	parser        *curvaparser.Parser
	previewChars  int
	defaultSector string
}

func NewReportService(pdfProcessor PDFProcessor, previewChars int, defaultSector string) *ReportService {
	return &ReportService{
		pdfProcessor:  pdfProcessor,
		parser:        curvaparser.New(),
		previewChars:  previewChars,
		defaultSector: defaultSector,
	}
}

// ParseReport runs the full pipeline on an uploaded document: validate the
// PDF, extract its text, parse product rows, guess the sector, then apply
// the caller's query filter and ordering. A document with zero parseable
// rows yields a NoProductRowsError carrying a raw-text preview.
func (s *ReportService) ParseReport(filename string, data []byte, opts ParseOptions) (*dto.ParseReportResponse, error) {
	pages, err := s.pdfProcessor.Validate(data)
	if err != nil {
		log.Printf("PDF validation failed for %s: %v", filename, err)
		return nil, dto.ErrNotPDF
	}
	log.Printf("Parsing %s (%d pages)", filename, pages)

	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		return nil, err
	}

	products := s.parser.Parse(text)
	if len(products) == 0 {
		return nil, &dto.NoProductRowsError{Preview: preview(text, s.previewChars)}
	}

	sector := curvaparser.GuessSector(text, filename)
	if sector == curvaparser.DefaultSector && s.defaultSector != "" {
		sector = s.defaultSector
	}

	total := len(products)
	query := curvaparser.ParseQuery(opts.Query, opts.MatchAll)
	products = curvaparser.FilterProducts(products, query)
	curvaparser.SortProducts(products, opts.Order)

	records := make([]dto.ProductRecord, len(products))
	for i, p := range products {
		records[i] = toRecord(p)
	}

	return &dto.ParseReportResponse{
		Filename:    filename,
		Sector:      sector,
		TotalRows:   total,
		MatchedRows: len(records),
		Records:     records,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}, nil
}

func toRecord(p curvaparser.Product) dto.ProductRecord {
	return dto.ProductRecord{
		Name:            p.Name,
		Quantity:        p.Quantity,
		Value:           p.Value,
		QuantityDisplay: formatBR(p.Quantity, 3),
		ValueDisplay:    formatBR(p.Value, 2),
	}
}

func formatBR(v float64, places int) string {
	return brPrinter.Sprint(number.Decimal(v, number.Scale(places)))
}

func preview(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
