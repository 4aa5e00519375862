package dto

import "errors"

// ExportRequest carries everything the export step needs. The caller owns
// the record list and the selection; the service keeps no state between a
// parse and the export that follows it.
type ExportRequest struct {
	Records  []ProductRecord `json:"records" binding:"required"`
	Selected []string        `json:"selected"`
	Sector   string          `json:"sector"`
	Month    string          `json:"month"`
	Week     string          `json:"week"`
	Order    string          `json:"order,omitempty"`
}

// Validate performs basic validation on the request
func (r *ExportRequest) Validate() error {
	if len(r.Records) == 0 {
		return errors.New("records are required")
	}
	if len(r.Selected) == 0 {
		return ErrEmptySelection
	}
	return nil
}
