package apierror

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, e *Error) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(e.ToJSON(), &body))
	return body
}

func TestErrorBodies(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		body   map[string]string
	}{
		{
			name:   "bad request",
			err:    BadRequest("Invalid query parameters", `invalid order_by "color"`),
			status: http.StatusBadRequest,
			body:   map[string]string{"error": "Invalid query parameters", "details": `invalid order_by "color"`},
		},
		{
			name:   "not found",
			err:    NotFound("Item not found", "999"),
			status: http.StatusNotFound,
			body:   map[string]string{"error": "Item not found", "id": "999"},
		},
		{
			name:   "route not found",
			err:    RouteNotFound("/nope?x=1"),
			status: http.StatusNotFound,
			body:   map[string]string{"error": "Route not found", "ruta": "/nope?x=1"},
		},
		{
			name:   "internal",
			err:    InternalError("Failed to fetch items", "connection refused"),
			status: http.StatusInternalServerError,
			body:   map[string]string{"error": "Failed to fetch items", "details": "connection refused"},
		},
		{
			name:   "internal defaults message",
			err:    InternalError("", ""),
			status: http.StatusInternalServerError,
			body:   map[string]string{"error": "An unexpected error occurred"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.body, decode(t, tt.err))
		})
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "boom: details", InternalError("boom", "details").Error())
	assert.Equal(t, "Resource not found", NotFound("", "1").Error())
}
