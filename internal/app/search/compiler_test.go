package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCompileNoFilters(t *testing.T) {
	fs, err := ValidateFilters(RawFilters{})
	require.NoError(t, err)

	spec := Compile(fs)
	assert.Empty(t, spec.Fragments)
	assert.Empty(t, spec.Params)
	assert.Equal(t, "rating DESC, course_name ASC", spec.OrderBy)
	assert.Equal(t, 10, spec.Limit)
	assert.Equal(t, 0, spec.Offset)

	countSQL, countArgs := spec.CountSQL()
	assert.Equal(t, "SELECT COUNT(*) FROM courses", countSQL)
	assert.Empty(t, countArgs)

	selectSQL, selectArgs := spec.SelectSQL()
	assert.Equal(t,
		"SELECT course_id, course_name, department, level, delivery_mode, credits, duration_weeks, rating, tuition_fee_inr, year_offered"+
			" FROM courses ORDER BY rating DESC, course_name ASC LIMIT $1 OFFSET $2",
		selectSQL)
	assert.Equal(t, []any{10, 0}, selectArgs)
}

func TestCompileSharedQueryPlaceholder(t *testing.T) {
	spec := Compile(&FilterSet{
		Query:   ptr("python"),
		SortDir: "asc",
		Page:    1,
		PerPage: 10,
	})

	require.Len(t, spec.Fragments, 1)
	assert.Equal(t, "(course_name ILIKE $1 OR department ILIKE $1)", spec.Fragments[0])
	// One parameter serves both ILIKE sides.
	assert.Equal(t, []any{"%python%"}, spec.Params)
}

func TestCompileFragmentOrder(t *testing.T) {
	spec := Compile(&FilterSet{
		Query:            ptr("ml"),
		Department:       ptr("Data Science"),
		Level:            ptr("PG"),
		DeliveryMode:     ptr("online"),
		YearOffered:      ptr(2024),
		MinFee:           ptr(int64(40000)),
		MaxFee:           ptr(int64(80000)),
		MinRating:        ptr(3.5),
		MaxRating:        ptr(4.5),
		MinCredits:       ptr(3),
		MaxCredits:       ptr(5),
		MinDurationWeeks: ptr(8),
		MaxDurationWeeks: ptr(16),
		SortDir:          "asc",
		Page:             1,
		PerPage:          10,
	})

	assert.Equal(t, []string{
		"(course_name ILIKE $1 OR department ILIKE $1)",
		"department = $2",
		"level = $3",
		"delivery_mode = $4",
		"year_offered = $5",
		"tuition_fee_inr >= $6",
		"tuition_fee_inr <= $7",
		"rating >= $8",
		"rating <= $9",
		"credits >= $10",
		"credits <= $11",
		"duration_weeks >= $12",
		"duration_weeks <= $13",
	}, spec.Fragments)
	assert.Equal(t, []any{
		"%ml%", "Data Science", "PG", "online", 2024,
		int64(40000), int64(80000), 3.5, 4.5, 3, 5, 8, 16,
	}, spec.Params)
}

func TestCompilePaginationPlaceholdersAreLast(t *testing.T) {
	spec := Compile(&FilterSet{
		Department: ptr("Finance"),
		MinRating:  ptr(4.0),
		SortDir:    "asc",
		Page:       3,
		PerPage:    20,
	})

	sql, args := spec.SelectSQL()
	assert.Contains(t, sql, "WHERE department = $1 AND rating >= $2")
	assert.Contains(t, sql, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{"Finance", 4.0, 20, 40}, args)

	// The count query shares predicates but never paginates.
	countSQL, countArgs := spec.CountSQL()
	assert.Equal(t, "SELECT COUNT(*) FROM courses WHERE department = $1 AND rating >= $2", countSQL)
	assert.Equal(t, []any{"Finance", 4.0}, countArgs)
}

func TestCompileExplicitSort(t *testing.T) {
	fs, err := ValidateFilters(RawFilters{
		"sort_by":  "tuition_fee_inr",
		"sort_dir": "desc",
	})
	require.NoError(t, err)

	spec := Compile(fs)
	assert.Equal(t, "tuition_fee_inr DESC", spec.OrderBy)

	sql, _ := spec.SelectSQL()
	assert.Contains(t, sql, "ORDER BY tuition_fee_inr DESC")
}

func TestCompileIsDeterministic(t *testing.T) {
	raw := RawFilters{
		"q":          "python",
		"department": "Computer Science",
		"min_fee":    "30000",
		"max_rating": "4.8",
	}

	fs, err := ValidateFilters(raw)
	require.NoError(t, err)
	firstSQL, firstArgs := Compile(fs).SelectSQL()

	for i := 0; i < 10; i++ {
		fs, err := ValidateFilters(raw)
		require.NoError(t, err)
		sql, args := Compile(fs).SelectSQL()
		assert.Equal(t, firstSQL, sql)
		assert.Equal(t, firstArgs, args)
	}
}
