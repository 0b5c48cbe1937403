package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jewelry-inventory-api/pkg/apierror"

	"github.com/stretchr/testify/assert"
)

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]int{"totalCount": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"totalCount":2}`, w.Body.String())
}

func TestError(t *testing.T) {
	t.Run("api error keeps its status", func(t *testing.T) {
		w := httptest.NewRecorder()
		Error(w, fmt.Errorf("wrapped: %w", apierror.NotFound("Item not found", "7")))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Item not found","id":"7"}`, w.Body.String())
	})

	t.Run("plain error becomes 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		Error(w, errors.New("secret internals"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret internals")
	})
}
