// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import "time"

// --- List Response ---

// ListResponse wraps an unpaginated list.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewListResponse never returns a null items array.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// --- Errors ---

// FieldError is one failed validation rule of a request body.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// optionalTime maps the zero time to nil so the API returns null
// instead of "0001-01-01T00:00:00Z".
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	val := t
	return &val
}
