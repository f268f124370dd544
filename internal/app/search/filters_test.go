package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecompass/coursecompass/internal/pkg/apperrors"
)

func TestValidateFiltersDefaults(t *testing.T) {
	fs, err := ValidateFilters(RawFilters{})
	require.NoError(t, err)

	assert.Equal(t, 1, fs.Page)
	assert.Equal(t, 10, fs.PerPage)
	assert.Equal(t, "asc", fs.SortDir)
	assert.Empty(t, fs.SortBy)
	assert.Nil(t, fs.Query)
	assert.Nil(t, fs.MinFee)
	assert.Nil(t, fs.MaxRating)
}

func TestValidateFiltersCoercion(t *testing.T) {
	fs, err := ValidateFilters(RawFilters{
		"q":             "  python  ",
		"department":    "Data Science",
		"level":         "pg",
		"delivery_mode": "ONLINE",
		"year_offered":  "2024",
		"min_fee":       "40000",
		"max_fee":       "80000",
		"min_rating":    "3.5",
		"max_rating":    "4.5",
		"min_credits":   "3",
		"max_credits":   "5",
		"sort_by":       "tuition_fee_inr",
		"sort_dir":      "DESC",
		"page":          "2",
		"per_page":      "25",
	})
	require.NoError(t, err)

	require.NotNil(t, fs.Query)
	assert.Equal(t, "python", *fs.Query)
	assert.Equal(t, "Data Science", *fs.Department)
	assert.Equal(t, "PG", *fs.Level)
	assert.Equal(t, "online", *fs.DeliveryMode)
	assert.Equal(t, 2024, *fs.YearOffered)
	assert.Equal(t, int64(40000), *fs.MinFee)
	assert.Equal(t, int64(80000), *fs.MaxFee)
	assert.Equal(t, 3.5, *fs.MinRating)
	assert.Equal(t, 4.5, *fs.MaxRating)
	assert.Equal(t, 3, *fs.MinCredits)
	assert.Equal(t, 5, *fs.MaxCredits)
	assert.Equal(t, "tuition_fee_inr", fs.SortBy)
	assert.Equal(t, "desc", fs.SortDir)
	assert.Equal(t, 2, fs.Page)
	assert.Equal(t, 25, fs.PerPage)
}

func TestValidateFiltersRejections(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawFilters
		field string
	}{
		{"unknown level", RawFilters{"level": "PhD"}, "level"},
		{"unknown delivery mode", RawFilters{"delivery_mode": "correspondence"}, "delivery_mode"},
		{"year below floor", RawFilters{"year_offered": "1899"}, "year_offered"},
		{"year above ceiling", RawFilters{"year_offered": "2101"}, "year_offered"},
		{"year not a number", RawFilters{"year_offered": "soon"}, "year_offered"},
		{"negative fee", RawFilters{"min_fee": "-1"}, "min_fee"},
		{"fee not a number", RawFilters{"max_fee": "cheap"}, "max_fee"},
		{"rating above five", RawFilters{"min_rating": "5.1"}, "min_rating"},
		{"negative rating", RawFilters{"max_rating": "-0.5"}, "max_rating"},
		{"zero credits", RawFilters{"min_credits": "0"}, "min_credits"},
		{"zero duration", RawFilters{"max_duration_weeks": "0"}, "max_duration_weeks"},
		{"sort column not whitelisted", RawFilters{"sort_by": "password"}, "sort_by"},
		{"bad sort direction", RawFilters{"sort_dir": "sideways"}, "sort_dir"},
		{"unrecognized key", RawFilters{"colour": "blue"}, "colour"},
		{"reversed fee range", RawFilters{"min_fee": "80000", "max_fee": "40000"}, "min_fee"},
		{"reversed rating range", RawFilters{"min_rating": "4.5", "max_rating": "3"}, "min_rating"},
		{"reversed credits range", RawFilters{"min_credits": "10", "max_credits": "4"}, "min_credits"},
		{"reversed duration range", RawFilters{"min_duration_weeks": "20", "max_duration_weeks": "8"}, "min_duration_weeks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := ValidateFilters(tt.raw)
			require.Error(t, err)
			assert.Nil(t, fs)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "expected validation error, got %v", err)
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
		})
	}
}

func TestValidateFiltersFailFastOrder(t *testing.T) {
	// Both fields are invalid; the fixed key order reports level first.
	_, err := ValidateFilters(RawFilters{
		"level":    "PhD",
		"sort_dir": "sideways",
	})
	require.Error(t, err)
	assert.Equal(t, "level", apperrors.FieldOf(err))
}

func TestValidateFiltersPagination(t *testing.T) {
	tests := []struct {
		name        string
		raw         RawFilters
		wantPage    int
		wantPerPage int
	}{
		{"zero page falls back to first", RawFilters{"page": "0"}, 1, 10},
		{"negative page falls back to first", RawFilters{"page": "-3"}, 1, 10},
		{"per_page floor", RawFilters{"per_page": "0"}, 1, 1},
		{"per_page ceiling", RawFilters{"per_page": "500"}, 1, 100},
		{"in-range values pass through", RawFilters{"page": "7", "per_page": "42"}, 7, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := ValidateFilters(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, fs.Page)
			assert.Equal(t, tt.wantPerPage, fs.PerPage)
		})
	}
}

func TestValidateFiltersBlankValuesIgnored(t *testing.T) {
	fs, err := ValidateFilters(RawFilters{
		"q":          "",
		"level":      "",
		"min_rating": "",
	})
	require.NoError(t, err)
	assert.Nil(t, fs.Query)
	assert.Nil(t, fs.Level)
	assert.Nil(t, fs.MinRating)
}
