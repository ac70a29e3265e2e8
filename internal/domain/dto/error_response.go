package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint and middleware.
//
// The client-facing message lives in the "error" field; ErrorDetails carries
// optional diagnostic detail and is omitted when empty. Internal faults are
// reported with a generic message and no details.
type ErrorResponse struct {
	Message      string    `json:"error" example:"stock symbol is required"`
	ErrorDetails string    `json:"error_details,omitempty" example:"invalid range format"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-12T10:15:30Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
