package model

import "time"

// ActivityReport records one incoming request for the activity side channel.
type ActivityReport struct {
	Timestamp  time.Time           `json:"timestamp"`
	RequestID  string              `json:"request_id,omitempty"`
	Method     string              `json:"method"`
	Path       string              `json:"path"`
	Query      map[string][]string `json:"query,omitempty"`
	RemoteAddr string              `json:"remote_addr,omitempty"`
}

// HasQuery reports whether the request carried any query parameters.
func (r ActivityReport) HasQuery() bool {
	return len(r.Query) > 0
}
