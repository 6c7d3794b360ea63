// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CountResponse represents a count result.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ExistsResponse represents an existence check result.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// ParseDate parses a calendar date in the wire format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
