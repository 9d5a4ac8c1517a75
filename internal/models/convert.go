package models

// ConvertRequest is a validated conversion query.
type ConvertRequest struct {
	// Currency code as given by the client, case preserved
	Currency string
	// Amount of Currency to convert
	Amount float64
}

// ConvertResponse represents a successful conversion
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Amount in the base currency
	// example: 150.0
	Value float64 `json:"value"`
}

// ConvertErrorResponse represents a failed conversion
// swagger:model ConvertErrorResponse
type ConvertErrorResponse struct {
	// Reason of the failure
	// example: params not specified
	Reason string `json:"reason"`
}
