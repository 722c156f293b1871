package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Fields:
//   - Kind: machine-readable error category (e.g. "InvalidArgument"), optional.
//   - Message: human-readable summary.
//   - ErrorDetails: underlying error text, if any.
//   - Timestamp: when the error was produced (UTC).
type ErrorResponse struct {
	Kind         string    `json:"kind,omitempty" example:"InvalidArgument"`
	Message      string    `json:"message" example:"farmer id is required"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid argument"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so the response can be passed around as an error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// The inner error is optional.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// WithKind returns a copy of the response tagged with a machine-readable kind.
func (e ErrorResponse) WithKind(kind string) ErrorResponse {
	e.Kind = kind
	return e
}
