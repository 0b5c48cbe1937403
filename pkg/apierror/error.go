package apierror

import (
	"encoding/json"
	"net/http"
)

// Error represents a structured API error response.
//
// Only the fields relevant to an error kind are set: validation and backend
// failures carry Details, a missing item carries ID, an unmatched route
// carries Route.
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Details    string `json:"details,omitempty"`
	ID         string `json:"id,omitempty"`
	Route      string `json:"ruta,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// ToJSON converts the error to JSON bytes.
func (e *Error) ToJSON() []byte {
	data, _ := json.Marshal(e)
	return data
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(message, details string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Details:    details,
	}
}

// NotFound creates a 404 error for a missing resource identified by id.
func NotFound(message, id string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{
		StatusCode: http.StatusNotFound,
		Message:    message,
		ID:         id,
	}
}

// RouteNotFound creates a 404 error for a request that matched no route.
func RouteNotFound(route string) *Error {
	return &Error{
		StatusCode: http.StatusNotFound,
		Message:    "Route not found",
		Route:      route,
	}
}

// InternalError creates a 500 Internal Server Error.
func InternalError(message, details string) *Error {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		Details:    details,
	}
}
