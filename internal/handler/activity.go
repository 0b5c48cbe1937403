package handler

import (
	"net/http"
	"strconv"

	"jewelry-inventory-api/internal/activity"
	"jewelry-inventory-api/pkg/apierror"
	"jewelry-inventory-api/pkg/response"
)

const defaultActivityLimit = 50

// ActivityHandler serves the most recent activity reports.
type ActivityHandler struct {
	memory *activity.MemorySink
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(memory *activity.MemorySink) *ActivityHandler {
	return &ActivityHandler{memory: memory}
}

// Recent handles GET /activity
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(w, apierror.BadRequest("Invalid query parameters", "limit must be a positive integer"))
			return
		}
		limit = n
	}

	reports := h.memory.Recent(limit)
	response.OK(w, map[string]interface{}{
		"count":   len(reports),
		"total":   h.memory.Total(),
		"reports": reports,
	})
}
