package model

// Response is the JSON envelope for the plain HTTP endpoints (health, errors).
// GraphQL responses use the standard {data, errors} shape instead.
type Response struct {
	Data    any     `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
	Message string  `json:"message"`
}

// NewErrorResponse builds an error envelope with the given message.
func NewErrorResponse(errMsg string) Response {
	return Response{
		Error:   &errMsg,
		Message: "Error",
	}
}
