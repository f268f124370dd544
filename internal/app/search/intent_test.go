package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFilters(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     RawFilters
	}{
		{
			name:     "structured question with rating guard",
			question: "online postgraduate management courses rated above 4",
			want: RawFilters{
				"delivery_mode": "online",
				"level":         "PG",
				"department":    "Management",
				"min_rating":    "4",
			},
		},
		{
			name:     "fee ceiling with free-text residue",
			question: "Find beginner-friendly Python courses under 50000 INR with high ratings",
			want: RawFilters{
				"max_fee": "50000",
				"q":       "beginner friendly python high ratings",
			},
		},
		{
			name:     "fee range",
			question: "courses between 40000 and 80000",
			want: RawFilters{
				"min_fee": "40000",
				"max_fee": "80000",
			},
		},
		{
			name:     "reversed fee range is swapped",
			question: "courses between 80000 and 40000",
			want: RawFilters{
				"min_fee": "40000",
				"max_fee": "80000",
			},
		},
		{
			name:     "indian comma grouping is stripped",
			question: "courses under 1,50,000",
			want: RawFilters{
				"max_fee": "150000",
			},
		},
		{
			name:     "exact fee sets both bounds",
			question: "courses costing 60000",
			want: RawFilters{
				"min_fee": "60000",
				"max_fee": "60000",
			},
		},
		{
			name:     "week unit claims the number away from fee",
			question: "courses under 12 weeks",
			want: RawFilters{
				"max_duration_weeks": "12",
			},
		},
		{
			name:     "credit unit claims the number away from fee",
			question: "courses with at least 4 credits",
			want: RawFilters{
				"min_credits": "4",
			},
		},
		{
			name:     "bare star count sets both rating bounds",
			question: "4 star courses",
			want: RawFilters{
				"min_rating": "4",
				"max_rating": "4",
			},
		},
		{
			name:     "decimal star range is not read as a fee",
			question: "courses between 3 and 4.5 stars",
			want: RawFilters{
				"min_rating": "3",
				"max_rating": "4.5",
			},
		},
		{
			name:     "bare credit count sets both bounds",
			question: "3 credit courses",
			want: RawFilters{
				"min_credits": "3",
				"max_credits": "3",
			},
		},
		{
			name:     "year of offering",
			question: "design courses in 2024",
			want: RawFilters{
				"department":   "Design",
				"year_offered": "2024",
			},
		},
		{
			name:     "year requires its own context word",
			question: "courses that begin 2024 cohorts",
			want: RawFilters{
				"q": "begin cohorts",
			},
		},
		{
			name:     "duration range",
			question: "programs between 8 and 16 weeks",
			want: RawFilters{
				"min_duration_weeks": "8",
				"max_duration_weeks": "16",
			},
		},
		{
			name:     "level synonyms",
			question: "bachelors degree in finance",
			want: RawFilters{
				"level":      "UG",
				"department": "Finance",
			},
		},
		{
			name:     "delivery synonyms",
			question: "blended mba programs",
			want: RawFilters{
				"delivery_mode": "hybrid",
				"level":         "PG",
			},
		},
		{
			name:     "department tie-break uses declared order",
			question: "computer and data courses",
			want: RawFilters{
				"department": "Computer Science",
			},
		},
		{
			name:     "qualitative rating words are not structured",
			question: "highly rated courses",
			want: RawFilters{
				"q": "highly",
			},
		},
		{
			name:     "fee with rupee symbol",
			question: "courses under ₹70000",
			want: RawFilters{
				"max_fee": "70000",
			},
		},
		{
			name:     "empty question yields no filters",
			question: "",
			want:     RawFilters{},
		},
		{
			name:     "pure free text",
			question: "machine learning fundamentals",
			want: RawFilters{
				"q": "machine learning fundamentals",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFilters(tt.question)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFiltersNeverPanics(t *testing.T) {
	// Garbage in, empty-or-partial map out. Extraction has no error path.
	inputs := []string{
		"?????",
		"between and",
		"under under under",
		"₹₹₹ 12,,,34",
		"rated above",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ExtractFilters(in) }, "input %q", in)
	}
}

func TestExtractFiltersFirstMatchWins(t *testing.T) {
	// Two fee phrases: only the first surviving one is taken per category.
	got := ExtractFilters("courses under 50000 and under 90000")
	assert.Equal(t, "50000", got["max_fee"])
	assert.NotContains(t, got, "min_fee")
}

func TestExtractFiltersIsDeterministic(t *testing.T) {
	question := "online PG data courses rated above 4 under 60000 with at least 3 credits in 2025"
	first := ExtractFilters(question)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractFilters(question))
	}
}
