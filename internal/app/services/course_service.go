package services

import (
	"context"
	"strings"
	"time"

	"github.com/coursecompass/coursecompass/internal/app/models"
	"github.com/coursecompass/coursecompass/internal/app/models/dto"
	"github.com/coursecompass/coursecompass/internal/app/search"
	"github.com/coursecompass/coursecompass/internal/pkg/apperrors"
	"github.com/coursecompass/coursecompass/internal/pkg/helpers"
	"github.com/coursecompass/coursecompass/internal/pkg/logger"
)

// CourseStore is the row-store contract the service depends on. The
// repository implements it; tests substitute a stub.
type CourseStore interface {
	Search(ctx context.Context, spec search.QuerySpec) ([]models.Course, int64, error)
	FindBySpec(ctx context.Context, spec search.QuerySpec) ([]models.Course, error)
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
	ListDepartments(ctx context.Context) ([]models.DepartmentCount, error)
}

// CourseListResult is a page of serialized courses plus its page metadata.
type CourseListResult struct {
	Courses []dto.CourseResponse
	Meta    dto.PageMeta
}

// CourseService orchestrates extraction, validation, compilation and
// execution for the search and comparison paths.
type CourseService struct {
	store CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(store CourseStore) *CourseService {
	return &CourseService{store: store}
}

// SearchByText answers a free-form question: the intent extractor derives a
// raw filter map, then the shared validate-compile-fetch pipeline runs.
// Pagination parameters ride alongside the question.
func (s *CourseService) SearchByText(ctx context.Context, question, page, perPage string) (*CourseListResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, apperrors.NewMissingParameterError("query")
	}

	raw := search.ExtractFilters(question)
	if page != "" {
		raw["page"] = page
	}
	if perPage != "" {
		raw["per_page"] = perPage
	}

	logger.Debug().Str("question", question).Interface("filters", raw).Msg("Extracted filters from question")
	return s.searchWithFilters(ctx, raw)
}

// SearchByParams answers an explicit-parameter request. It feeds the raw
// parameters straight into the same validator as the text path, so both
// converge on one FilterSet shape and one compiler.
func (s *CourseService) SearchByParams(ctx context.Context, raw search.RawFilters) (*CourseListResult, error) {
	return s.searchWithFilters(ctx, raw)
}

func (s *CourseService) searchWithFilters(ctx context.Context, raw search.RawFilters) (*CourseListResult, error) {
	fs, err := search.ValidateFilters(raw)
	if err != nil {
		return nil, err
	}

	spec := search.Compile(fs)
	courses, total, err := s.store.Search(ctx, spec)
	if err != nil {
		return nil, err
	}

	return &CourseListResult{
		Courses: dto.FromCourses(courses),
		Meta:    helpers.NewPageMeta(total, fs.Page, fs.PerPage),
	}, nil
}

// Compare fetches the requested courses in first-occurrence input order and
// computes aggregate statistics when more than one was found.
func (s *CourseService) Compare(ctx context.Context, rawIDs string) (*dto.CompareData, error) {
	ids, err := search.ParseCompareIDs(rawIDs)
	if err != nil {
		return nil, err
	}

	spec := search.CompileComparison(ids)
	courses, err := s.store.FindBySpec(ctx, spec)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		found[c.CourseID] = struct{}{}
	}
	missing := make([]string, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	data := &dto.CompareData{
		Courses:    dto.FromCourses(courses),
		MissingIDs: missing,
		Meta: dto.CompareMeta{
			RequestedCount: len(ids),
			FoundCount:     len(courses),
			MissingCount:   len(missing),
			ComparisonDate: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if stats := search.ComputeStats(courses); stats != nil {
		data.Insights = toCompareInsights(stats)
	}
	return data, nil
}

// GetCourse retrieves one course by id.
func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*dto.CourseResponse, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, apperrors.NewMissingParameterError("id")
	}

	course, err := s.store.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromCourse(*course)
	return &resp, nil
}

// ListDepartments returns the catalog's departments with course counts.
func (s *CourseService) ListDepartments(ctx context.Context) (*dto.DepartmentListData, error) {
	departments, err := s.store.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []models.DepartmentCount{}
	}
	return &dto.DepartmentListData{Departments: departments}, nil
}

func toCompareInsights(stats *search.Stats) *dto.CompareInsights {
	return &dto.CompareInsights{
		Fee: dto.FeeInsight{
			Min: stats.Fee.Min,
			Max: stats.Fee.Max,
			Avg: stats.Fee.Avg,
		},
		Rating: dto.RatingInsight{
			Min: stats.Rating.Min,
			Max: stats.Rating.Max,
			Avg: stats.Rating.Avg,
		},
		Credits: dto.CreditsInsight{
			Min: stats.Credits.Min,
			Max: stats.Credits.Max,
			Avg: stats.Credits.Avg,
		},
	}
}
