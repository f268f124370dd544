package search

import (
	"fmt"
	"strings"

	"github.com/coursecompass/coursecompass/internal/pkg/helpers"
)

const (
	coursesTable  = "courses"
	courseColumns = "course_id, course_name, department, level, delivery_mode, credits, duration_weeks, rating, tuition_fee_inr, year_offered"

	// defaultOrder is the stable two-key sort used whenever no explicit
	// sort option is given: best-rated first, name as the tie-break.
	defaultOrder = "rating DESC, course_name ASC"
)

// QuerySpec is a compiled, execution-ready query: predicate fragments with
// positional placeholders already rendered, the positionally-matched
// parameter list, a sort clause and pagination. A Limit of zero means the
// rendered SELECT carries no pagination suffix (the comparison path).
type QuerySpec struct {
	Fragments []string
	Params    []any
	OrderBy   string
	Limit     int
	Offset    int
}

// specBuilder accumulates (fragment, param) pairs. Placeholder numbers are
// handed out by bind, so a fragment can reference the same parameter more
// than once and fragments can be added or removed without renumbering bugs.
type specBuilder struct {
	fragments []string
	params    []any
}

// bind registers a parameter and returns its 1-based placeholder index.
func (b *specBuilder) bind(v any) int {
	b.params = append(b.params, v)
	return len(b.params)
}

func (b *specBuilder) addf(format string, args ...any) {
	b.fragments = append(b.fragments, fmt.Sprintf(format, args...))
}

// Compile translates a validated FilterSet into a QuerySpec. Fragment order
// is fixed, so compiling the same FilterSet twice yields identical SQL and
// identical parameter order.
func Compile(fs *FilterSet) QuerySpec {
	b := &specBuilder{}

	if fs.Query != nil {
		// One shared placeholder covers both sides of the OR.
		n := b.bind("%" + *fs.Query + "%")
		b.addf("(course_name ILIKE $%d OR department ILIKE $%d)", n, n)
	}
	if fs.Department != nil {
		b.addf("department = $%d", b.bind(*fs.Department))
	}
	if fs.Level != nil {
		b.addf("level = $%d", b.bind(*fs.Level))
	}
	if fs.DeliveryMode != nil {
		b.addf("delivery_mode = $%d", b.bind(*fs.DeliveryMode))
	}
	if fs.YearOffered != nil {
		b.addf("year_offered = $%d", b.bind(*fs.YearOffered))
	}
	if fs.MinFee != nil {
		b.addf("tuition_fee_inr >= $%d", b.bind(*fs.MinFee))
	}
	if fs.MaxFee != nil {
		b.addf("tuition_fee_inr <= $%d", b.bind(*fs.MaxFee))
	}
	if fs.MinRating != nil {
		b.addf("rating >= $%d", b.bind(*fs.MinRating))
	}
	if fs.MaxRating != nil {
		b.addf("rating <= $%d", b.bind(*fs.MaxRating))
	}
	if fs.MinCredits != nil {
		b.addf("credits >= $%d", b.bind(*fs.MinCredits))
	}
	if fs.MaxCredits != nil {
		b.addf("credits <= $%d", b.bind(*fs.MaxCredits))
	}
	if fs.MinDurationWeeks != nil {
		b.addf("duration_weeks >= $%d", b.bind(*fs.MinDurationWeeks))
	}
	if fs.MaxDurationWeeks != nil {
		b.addf("duration_weeks <= $%d", b.bind(*fs.MaxDurationWeeks))
	}

	orderBy := defaultOrder
	if fs.SortBy != "" {
		orderBy = fs.SortBy + " " + strings.ToUpper(fs.SortDir)
	}

	return QuerySpec{
		Fragments: b.fragments,
		Params:    b.params,
		OrderBy:   orderBy,
		Limit:     fs.PerPage,
		Offset:    helpers.CalculateOffset(fs.Page, fs.PerPage),
	}
}

func (s QuerySpec) whereClause() string {
	if len(s.Fragments) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(s.Fragments, " AND ")
}

// CountSQL renders the row-count query: same fragments and parameters, no
// sort, no pagination.
func (s QuerySpec) CountSQL() (string, []any) {
	return "SELECT COUNT(*) FROM " + coursesTable + s.whereClause(), s.Params
}

// SelectSQL renders the main query. When pagination applies, the limit and
// offset are always the final two placeholders.
func (s QuerySpec) SelectSQL() (string, []any) {
	sql := "SELECT " + courseColumns + " FROM " + coursesTable + s.whereClause()
	if s.OrderBy != "" {
		sql += " ORDER BY " + s.OrderBy
	}
	if s.Limit <= 0 {
		return sql, s.Params
	}

	args := make([]any, 0, len(s.Params)+2)
	args = append(args, s.Params...)
	args = append(args, s.Limit, s.Offset)
	sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(s.Params)+1, len(s.Params)+2)
	return sql, args
}
