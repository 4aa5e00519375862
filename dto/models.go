package dto

// ProductRecord is one aggregated product row from a Curva ABC report.
// QuantityDisplay/ValueDisplay carry the pt-BR formatted rendering
// (grouping with ".", decimal ","), ready for listing in a UI.
type ProductRecord struct {
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Value           float64 `json:"value"`
	QuantityDisplay string  `json:"quantity_display,omitempty"`
	ValueDisplay    string  `json:"value_display,omitempty"`
}
