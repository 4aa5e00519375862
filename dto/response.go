package dto

import "errors"

// Sentinel errors surfaced by the service layer.
var (
	ErrNotPDF         = errors.New("uploaded file is not a PDF")
	ErrFileTooLarge   = errors.New("uploaded file exceeds the size limit")
	ErrEmptySelection = errors.New("no products selected for export")
)

// NoProductRowsError signals that a document produced zero parseable rows.
// Preview carries the first characters of the extracted text so the caller
// can show the user what the parser actually saw.
type NoProductRowsError struct {
	Preview string
}

func (e *NoProductRowsError) Error() string {
	return "no product rows recognized in document"
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Preview string `json:"preview,omitempty"`
}

// ParseReportResponse is the result of parsing an uploaded report.
type ParseReportResponse struct {
	Filename    string          `json:"filename"`
	Sector      string          `json:"sector"`
	TotalRows   int             `json:"total_rows"`
	MatchedRows int             `json:"matched_rows"`
	Records     []ProductRecord `json:"records"`
	ProcessedAt string          `json:"processed_at"`
}
