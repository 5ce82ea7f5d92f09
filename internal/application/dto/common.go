package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is a plain success body.
type MessageResponse struct {
	Message string `json:"message"`
}
