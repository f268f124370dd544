package helpers

import (
	"math"

	"github.com/coursecompass/coursecompass/internal/app/models/dto"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultPage    = 1 // Default page is 1-based
)

// CalculateOffset converts a 1-based page number to a 0-based row offset.
func CalculateOffset(page, perPage int) int {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return (page - 1) * perPage
}

// NewPageMeta creates a PageMeta DTO for the given totals.
//
// A zero total count yields zero total pages. The page is deliberately not
// clamped against total pages: an out-of-range page is the caller's signal to
// return an empty data set, not an error.
func NewPageMeta(totalCount int64, page, perPage int) dto.PageMeta {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(perPage)))
	}

	return dto.PageMeta{
		TotalCount:  totalCount,
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
