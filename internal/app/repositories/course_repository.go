package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecompass/coursecompass/internal/app/models"
	"github.com/coursecompass/coursecompass/internal/app/search"
	"github.com/coursecompass/coursecompass/internal/pkg/apperrors"
	"github.com/coursecompass/coursecompass/internal/pkg/logger"
)

const courseColumns = "course_id, course_name, department, level, delivery_mode, credits, duration_weeks, rating, tuition_fee_inr, year_offered"

// CourseRepository executes compiled query specs and lookup queries against
// the courses table.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.CourseID, &c.CourseName, &c.Department, &c.Level, &c.DeliveryMode,
		&c.Credits, &c.DurationWeeks, &c.Rating, &c.TuitionFeeINR, &c.YearOffered,
	)
	return c, err
}

func collectCourses(rows pgx.Rows) ([]models.Course, error) {
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Search runs the COUNT and SELECT halves of a compiled spec and returns the
// page of rows plus the total match count.
func (r *CourseRepository) Search(ctx context.Context, spec search.QuerySpec) ([]models.Course, int64, error) {
	countSQL, countArgs := spec.CountSQL()

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Str("query", countSQL).Msg("Error counting courses")
		return nil, 0, apperrors.NewStoreError(err, "failed to count courses")
	}
	if total == 0 {
		return nil, 0, nil
	}

	selectSQL, selectArgs := spec.SelectSQL()
	rows, err := r.db.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		logger.Error().Err(err).Str("query", selectSQL).Msg("Error querying courses")
		return nil, 0, apperrors.NewStoreError(err, "failed to query courses")
	}

	courses, err := collectCourses(rows)
	if err != nil {
		return nil, 0, apperrors.NewStoreError(err, "failed to scan courses")
	}
	return courses, total, nil
}

// FindBySpec runs the SELECT half of a spec that has no pagination, e.g. the
// comparison membership query.
func (r *CourseRepository) FindBySpec(ctx context.Context, spec search.QuerySpec) ([]models.Course, error) {
	selectSQL, selectArgs := spec.SelectSQL()
	rows, err := r.db.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		logger.Error().Err(err).Str("query", selectSQL).Msg("Error querying courses by spec")
		return nil, apperrors.NewStoreError(err, "failed to query courses")
	}

	courses, err := collectCourses(rows)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "failed to scan courses")
	}
	return courses, nil
}

// GetByID retrieves a single course by its identifier.
func (r *CourseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	query, args, err := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error getting course")
		return nil, apperrors.NewStoreError(err, "failed to get course")
	}
	return &course, nil
}

// ListDepartments returns the distinct departments with their course counts,
// ordered by name.
func (r *CourseRepository) ListDepartments(ctx context.Context) ([]models.DepartmentCount, error) {
	query, args, err := r.sb.Select("department", "COUNT(*) AS course_count").
		From("courses").
		GroupBy("department").
		OrderBy("department ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing departments")
		return nil, apperrors.NewStoreError(err, "failed to list departments")
	}
	defer rows.Close()

	var departments []models.DepartmentCount
	for rows.Next() {
		var d models.DepartmentCount
		if err := rows.Scan(&d.Department, &d.CourseCount); err != nil {
			return nil, apperrors.NewStoreError(err, "failed to scan department")
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "failed to read departments")
	}
	return departments, nil
}

// CountCourses reports the total catalog size. Used by the seeder to decide
// whether sample data is needed.
func (r *CourseRepository) CountCourses(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, apperrors.NewStoreError(err, "failed to count catalog")
	}
	return total, nil
}
