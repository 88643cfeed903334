package domain

// ErrorResponse is the standardized error body returned by the API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"400"`
	Category string `json:"category" example:"CAPACITY_EXCEEDED"`
	Message  string `json:"message" example:"slot 010101 cannot hold 5 more units"`
}
