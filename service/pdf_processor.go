package service

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
	Validate(pdfData []byte) (int, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText pulls the text layer out of the PDF page by page. Rows come
// back in reading order; chunks within a row are joined with spaces since
// the parser downstream works on whitespace-split tokens and collapses any
// doubled separators itself. Garbled or empty pages contribute nothing
// rather than failing the document.
func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var textBuilder bytes.Buffer
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					textBuilder.WriteString(" ")
				}
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

// Validate runs a structural check on the uploaded bytes and returns the
// page count. Rejects non-PDF uploads before any parsing is attempted.
func (p *pdfProcessor) Validate(pdfData []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	rs := bytes.NewReader(pdfData)

	if err := api.Validate(rs, conf); err != nil {
		return 0, fmt.Errorf("pdf validation failed: %w", err)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	pages, err := api.PageCount(rs, conf)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return pages, nil
}
