package dto

import "time"

// APIResponse is the standard envelope for successful responses. Meta is only
// populated on paginated list endpoints.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"courses retrieved successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Meta      *PageMeta    `json:"meta,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-29T12:01:05.123Z"`
}

// PageMeta is the pagination summary returned alongside result rows. It is
// built fresh per request and never persisted.
type PageMeta struct {
	TotalCount  int64 `json:"total_count" example:"42"`
	Page        int   `json:"page" example:"1"`
	PerPage     int   `json:"per_page" example:"10"`
	TotalPages  int   `json:"total_pages" example:"5"`
	HasNextPage bool  `json:"has_next_page" example:"true"`
	HasPrevPage bool  `json:"has_prev_page" example:"false"`
}

// NewAPIResponse creates a standard success envelope
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewPaginatedResponse creates a success envelope carrying page metadata
func NewPaginatedResponse(data interface{}, meta PageMeta, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      &meta,
		Timestamp: time.Now(),
	}
}
