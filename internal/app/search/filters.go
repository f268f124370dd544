package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/coursecompass/coursecompass/internal/app/models"
	"github.com/coursecompass/coursecompass/internal/pkg/apperrors"
	"github.com/coursecompass/coursecompass/internal/pkg/helpers"
)

// FilterSet is the validated, typed mapping of search dimensions to
// constraint values. A nil field means no constraint on that dimension.
// For any populated min/max pair, min <= max holds.
type FilterSet struct {
	Query        *string
	Department   *string
	Level        *string
	DeliveryMode *string
	YearOffered  *int

	MinFee *int64
	MaxFee *int64

	MinRating *float64
	MaxRating *float64

	MinCredits *int
	MaxCredits *int

	MinDurationWeeks *int
	MaxDurationWeeks *int

	// SortBy is a whitelisted column name; empty selects the default
	// rating-then-name ordering. SortDir is "asc" or "desc".
	SortBy  string
	SortDir string

	Page    int
	PerPage int
}

// sortableColumns whitelists the sort_by values accepted from callers. The
// map value is the column actually placed in the ORDER BY clause, so user
// input never reaches SQL text directly.
var sortableColumns = map[string]string{
	"course_name":     "course_name",
	"department":      "department",
	"level":           "level",
	"delivery_mode":   "delivery_mode",
	"credits":         "credits",
	"duration_weeks":  "duration_weeks",
	"rating":          "rating",
	"tuition_fee_inr": "tuition_fee_inr",
	"year_offered":    "year_offered",
}

// validatedKeys is the fixed evaluation order, making the fail-fast behavior
// deterministic regardless of map iteration order.
var validatedKeys = []string{
	"q", "department", "level", "delivery_mode", "year_offered",
	"min_fee", "max_fee", "min_rating", "max_rating",
	"min_credits", "max_credits", "min_duration_weeks", "max_duration_weeks",
	"sort_by", "sort_dir", "page", "per_page",
}

// ValidateFilters coerces and range-checks a raw filter map from either path
// and produces a FilterSet. The first invalid field short-circuits with a
// descriptive error; remaining fields are not examined.
func ValidateFilters(raw RawFilters) (*FilterSet, error) {
	fs := &FilterSet{
		SortDir: "asc",
		Page:    helpers.DefaultPage,
		PerPage: helpers.DefaultPerPage,
	}

	for _, key := range validatedKeys {
		value, ok := raw[key]
		if !ok || value == "" {
			continue
		}
		if err := applyFilter(fs, key, value); err != nil {
			return nil, err
		}
	}

	if unknown := unrecognizedKeys(raw); len(unknown) > 0 {
		return nil, apperrors.NewValidationError(unknown[0], fmt.Sprintf("unrecognized filter: %s", unknown[0]))
	}

	if err := checkRanges(fs); err != nil {
		return nil, err
	}
	return fs, nil
}

func applyFilter(fs *FilterSet, key, value string) error {
	switch key {
	case "q":
		q := strings.TrimSpace(value)
		if q != "" {
			fs.Query = &q
		}
	case "department":
		d := strings.TrimSpace(value)
		fs.Department = &d
	case "level":
		level := strings.ToUpper(strings.TrimSpace(value))
		if level != models.LevelUG && level != models.LevelPG {
			return apperrors.NewValidationError("level", "level must be one of UG, PG")
		}
		fs.Level = &level
	case "delivery_mode":
		mode := strings.ToLower(strings.TrimSpace(value))
		switch mode {
		case models.DeliveryOnline, models.DeliveryOffline, models.DeliveryHybrid:
			fs.DeliveryMode = &mode
		default:
			return apperrors.NewValidationError("delivery_mode", "delivery_mode must be one of online, offline, hybrid")
		}
	case "year_offered":
		year, err := parseInt(key, value)
		if err != nil {
			return err
		}
		if year < 1900 || year > 2100 {
			return apperrors.NewValidationError("year_offered", "year_offered must be between 1900 and 2100")
		}
		fs.YearOffered = &year
	case "min_fee", "max_fee":
		fee, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return apperrors.NewValidationError(key, fmt.Sprintf("%s must be an integer", key))
		}
		if fee < 0 {
			return apperrors.NewValidationError(key, fmt.Sprintf("%s must not be negative", key))
		}
		if key == "min_fee" {
			fs.MinFee = &fee
		} else {
			fs.MaxFee = &fee
		}
	case "min_rating", "max_rating":
		rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return apperrors.NewValidationError(key, fmt.Sprintf("%s must be a number", key))
		}
		if rating < 0 || rating > 5 {
			return apperrors.NewValidationError(key, fmt.Sprintf("%s must be between 0 and 5", key))
		}
		if key == "min_rating" {
			fs.MinRating = &rating
		} else {
			fs.MaxRating = &rating
		}
	case "min_credits", "max_credits", "min_duration_weeks", "max_duration_weeks":
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		if n < 1 {
			return apperrors.NewValidationError(key, fmt.Sprintf("%s must be at least 1", key))
		}
		switch key {
		case "min_credits":
			fs.MinCredits = &n
		case "max_credits":
			fs.MaxCredits = &n
		case "min_duration_weeks":
			fs.MinDurationWeeks = &n
		case "max_duration_weeks":
			fs.MaxDurationWeeks = &n
		}
	case "sort_by":
		column, ok := sortableColumns[strings.ToLower(strings.TrimSpace(value))]
		if !ok {
			return apperrors.NewValidationError("sort_by", fmt.Sprintf("sort_by must be one of: %s", strings.Join(sortableColumnNames(), ", ")))
		}
		fs.SortBy = column
	case "sort_dir":
		dir := strings.ToLower(strings.TrimSpace(value))
		if dir != "asc" && dir != "desc" {
			return apperrors.NewValidationError("sort_dir", "sort_dir must be asc or desc")
		}
		fs.SortDir = dir
	case "page":
		page, err := parseInt(key, value)
		if err != nil {
			return err
		}
		if page < 1 {
			page = helpers.DefaultPage
		}
		fs.Page = page
	case "per_page":
		perPage, err := parseInt(key, value)
		if err != nil {
			return err
		}
		if perPage < 1 {
			perPage = 1
		}
		if perPage > helpers.MaxPerPage {
			perPage = helpers.MaxPerPage
		}
		fs.PerPage = perPage
	}
	return nil
}

// checkRanges enforces min <= max on every populated pair. The extractor has
// already swapped reversed text ranges, so a reversed pair here is a caller
// mistake and is rejected, not repaired.
func checkRanges(fs *FilterSet) error {
	if fs.MinFee != nil && fs.MaxFee != nil && *fs.MinFee > *fs.MaxFee {
		return apperrors.NewValidationError("min_fee", "min_fee must not exceed max_fee")
	}
	if fs.MinRating != nil && fs.MaxRating != nil && *fs.MinRating > *fs.MaxRating {
		return apperrors.NewValidationError("min_rating", "min_rating must not exceed max_rating")
	}
	if fs.MinCredits != nil && fs.MaxCredits != nil && *fs.MinCredits > *fs.MaxCredits {
		return apperrors.NewValidationError("min_credits", "min_credits must not exceed max_credits")
	}
	if fs.MinDurationWeeks != nil && fs.MaxDurationWeeks != nil && *fs.MinDurationWeeks > *fs.MaxDurationWeeks {
		return apperrors.NewValidationError("min_duration_weeks", "min_duration_weeks must not exceed max_duration_weeks")
	}
	return nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("%s must be an integer", field))
	}
	return n, nil
}

func unrecognizedKeys(raw RawFilters) []string {
	recognized := make(map[string]struct{}, len(validatedKeys))
	for _, k := range validatedKeys {
		recognized[k] = struct{}{}
	}
	var unknown []string
	for k := range raw {
		if _, ok := recognized[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func sortableColumnNames() []string {
	names := make([]string, 0, len(sortableColumns))
	for name := range sortableColumns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
