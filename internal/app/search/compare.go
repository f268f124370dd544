package search

import (
	"fmt"
	"math"
	"strings"

	"github.com/coursecompass/coursecompass/internal/app/models"
	"github.com/coursecompass/coursecompass/internal/pkg/apperrors"
)

// MaxCompareIDs caps how many distinct courses one comparison may request.
// The enforced cap and the documented cap are the same number; tests pin it.
const MaxCompareIDs = 4

// ParseCompareIDs splits a raw comma-separated id string, trims whitespace,
// drops empty tokens and deduplicates preserving first occurrence. IDs are
// case-sensitive.
func ParseCompareIDs(raw string) ([]string, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, apperrors.NewMissingParameterError("ids")
	}
	if len(ids) > MaxCompareIDs {
		return nil, apperrors.NewTooManyIDsError(fmt.Sprintf("at most %d courses can be compared, got %d", MaxCompareIDs, len(ids)))
	}
	return ids, nil
}

// CompileComparison builds the membership query for a deduplicated id list.
// The ORDER BY reproduces the caller's id order through a positional CASE
// mapping that reuses the IN-list placeholders, so every id appears exactly
// once in the parameter list.
func CompileComparison(ids []string) QuerySpec {
	b := &specBuilder{}

	refs := make([]string, len(ids))
	var order strings.Builder
	order.WriteString("CASE course_id")
	for i, id := range ids {
		n := b.bind(id)
		refs[i] = fmt.Sprintf("$%d", n)
		fmt.Fprintf(&order, " WHEN $%d THEN %d", n, i)
	}
	order.WriteString(" END")

	b.addf("course_id IN (%s)", strings.Join(refs, ", "))

	return QuerySpec{
		Fragments: b.fragments,
		Params:    b.params,
		OrderBy:   order.String(),
	}
}

// FeeStats holds min/max/average tuition fee; the average is rounded to the
// nearest rupee.
type FeeStats struct {
	Min int64
	Max int64
	Avg int64
}

// RatingStats holds min/max/average rating; the average is rounded to one
// decimal place.
type RatingStats struct {
	Min float64
	Max float64
	Avg float64
}

// CreditStats holds min/max/average credits; the average is rounded to one
// decimal place.
type CreditStats struct {
	Min int
	Max int
	Avg float64
}

// Stats aggregates fee, rating and credit figures over compared courses.
type Stats struct {
	Fee     FeeStats
	Rating  RatingStats
	Credits CreditStats
}

// ComputeStats calculates comparison statistics over the courses that were
// actually found. Statistics only make sense against something to compare
// with, so fewer than two courses yields nil.
func ComputeStats(courses []models.Course) *Stats {
	if len(courses) < 2 {
		return nil
	}

	stats := &Stats{
		Fee:     FeeStats{Min: courses[0].TuitionFeeINR, Max: courses[0].TuitionFeeINR},
		Rating:  RatingStats{Min: courses[0].Rating, Max: courses[0].Rating},
		Credits: CreditStats{Min: courses[0].Credits, Max: courses[0].Credits},
	}

	var feeSum int64
	var ratingSum float64
	var creditSum int
	for _, c := range courses {
		feeSum += c.TuitionFeeINR
		ratingSum += c.Rating
		creditSum += c.Credits

		stats.Fee.Min = min(stats.Fee.Min, c.TuitionFeeINR)
		stats.Fee.Max = max(stats.Fee.Max, c.TuitionFeeINR)
		stats.Rating.Min = math.Min(stats.Rating.Min, c.Rating)
		stats.Rating.Max = math.Max(stats.Rating.Max, c.Rating)
		stats.Credits.Min = min(stats.Credits.Min, c.Credits)
		stats.Credits.Max = max(stats.Credits.Max, c.Credits)
	}

	n := float64(len(courses))
	stats.Fee.Avg = int64(math.Round(float64(feeSum) / n))
	stats.Rating.Avg = roundToOneDecimal(ratingSum / n)
	stats.Credits.Avg = roundToOneDecimal(float64(creditSum) / n)
	return stats
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
