package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecompass/coursecompass/internal/app/models"
	"github.com/coursecompass/coursecompass/internal/app/search"
	"github.com/coursecompass/coursecompass/internal/pkg/apperrors"
)

// stubStore records the specs it receives and returns canned rows.
type stubStore struct {
	searchSpec   *search.QuerySpec
	searchRows   []models.Course
	searchTotal  int64
	searchErr    error
	findSpec     *search.QuerySpec
	findRows     []models.Course
	findErr      error
	getRow       *models.Course
	getErr       error
	departments  []models.DepartmentCount
	departErr    error
	searchCalled int
}

func (s *stubStore) Search(_ context.Context, spec search.QuerySpec) ([]models.Course, int64, error) {
	s.searchCalled++
	s.searchSpec = &spec
	return s.searchRows, s.searchTotal, s.searchErr
}

func (s *stubStore) FindBySpec(_ context.Context, spec search.QuerySpec) ([]models.Course, error) {
	s.findSpec = &spec
	return s.findRows, s.findErr
}

func (s *stubStore) GetByID(_ context.Context, _ string) (*models.Course, error) {
	return s.getRow, s.getErr
}

func (s *stubStore) ListDepartments(_ context.Context) ([]models.DepartmentCount, error) {
	return s.departments, s.departErr
}

func sampleCourse(id string, rating float64) models.Course {
	return models.Course{
		CourseID:      id,
		CourseName:    "Course " + id,
		Department:    "Data Science",
		Level:         models.LevelPG,
		DeliveryMode:  models.DeliveryOnline,
		Credits:       4,
		DurationWeeks: 12,
		Rating:        rating,
		TuitionFeeINR: 50000,
		YearOffered:   2024,
	}
}

func TestSearchByTextRequiresQuestion(t *testing.T) {
	store := &stubStore{}
	svc := NewCourseService(store)

	_, err := svc.SearchByText(context.Background(), "   ", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingParameter))
	assert.Equal(t, "query", apperrors.FieldOf(err))
	assert.Zero(t, store.searchCalled)
}

func TestSearchByTextCompilesExtractedFilters(t *testing.T) {
	store := &stubStore{
		searchRows:  []models.Course{sampleCourse("CC1001", 4.5)},
		searchTotal: 21,
	}
	svc := NewCourseService(store)

	result, err := svc.SearchByText(context.Background(), "online PG management courses rated above 4", "2", "10")
	require.NoError(t, err)

	require.NotNil(t, store.searchSpec)
	assert.Equal(t, []string{
		"department = $1",
		"level = $2",
		"delivery_mode = $3",
		"rating >= $4",
	}, store.searchSpec.Fragments)
	assert.Equal(t, []any{"Management", "PG", "online", 4.0}, store.searchSpec.Params)
	assert.Equal(t, 10, store.searchSpec.Limit)
	assert.Equal(t, 10, store.searchSpec.Offset)

	require.Len(t, result.Courses, 1)
	assert.Equal(t, "CC1001", result.Courses[0].CourseID)
	assert.Equal(t, "4.5", result.Courses[0].Rating)
	assert.Equal(t, int64(21), result.Meta.TotalCount)
	assert.Equal(t, 2, result.Meta.Page)
	assert.Equal(t, 3, result.Meta.TotalPages)
	assert.True(t, result.Meta.HasNextPage)
	assert.True(t, result.Meta.HasPrevPage)
}

func TestSearchByParamsRejectsBeforeStore(t *testing.T) {
	store := &stubStore{}
	svc := NewCourseService(store)

	_, err := svc.SearchByParams(context.Background(), search.RawFilters{"level": "PhD"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Zero(t, store.searchCalled)
}

func TestSearchByParamsEmptyResult(t *testing.T) {
	store := &stubStore{searchTotal: 0}
	svc := NewCourseService(store)

	result, err := svc.SearchByParams(context.Background(), search.RawFilters{"department": "Arts"})
	require.NoError(t, err)

	// The data field serializes as an empty array, never null.
	assert.NotNil(t, result.Courses)
	assert.Empty(t, result.Courses)
	assert.Equal(t, 0, result.Meta.TotalPages)
	assert.False(t, result.Meta.HasNextPage)
}

func TestCompare(t *testing.T) {
	store := &stubStore{
		findRows: []models.Course{
			sampleCourse("CC3", 4.5),
			sampleCourse("CC1", 4.0),
		},
	}
	svc := NewCourseService(store)

	data, err := svc.Compare(context.Background(), "CC3,CC1,CC3,CC2")
	require.NoError(t, err)

	require.NotNil(t, store.findSpec)
	assert.Equal(t, []any{"CC3", "CC1", "CC2"}, store.findSpec.Params)
	assert.Zero(t, store.findSpec.Limit)

	require.Len(t, data.Courses, 2)
	assert.Equal(t, "CC3", data.Courses[0].CourseID)
	assert.Equal(t, []string{"CC2"}, data.MissingIDs)
	assert.Equal(t, 3, data.Meta.RequestedCount)
	assert.Equal(t, 2, data.Meta.FoundCount)
	assert.Equal(t, 1, data.Meta.MissingCount)
	assert.NotEmpty(t, data.Meta.ComparisonDate)

	require.NotNil(t, data.Insights)
	assert.Equal(t, 4.0, data.Insights.Rating.Min)
	assert.Equal(t, 4.5, data.Insights.Rating.Max)
	assert.Equal(t, int64(50000), data.Insights.Fee.Avg)
}

func TestCompareSingleFoundHasNoInsights(t *testing.T) {
	store := &stubStore{
		findRows: []models.Course{sampleCourse("CC1", 4.0)},
	}
	svc := NewCourseService(store)

	data, err := svc.Compare(context.Background(), "CC1,CC9")
	require.NoError(t, err)

	assert.Nil(t, data.Insights)
	assert.Equal(t, []string{"CC9"}, data.MissingIDs)
	assert.Equal(t, 2, data.Meta.RequestedCount)
	assert.Equal(t, 1, data.Meta.FoundCount)
}

func TestCompareRejectsBadInput(t *testing.T) {
	svc := NewCourseService(&stubStore{})

	_, err := svc.Compare(context.Background(), "")
	assert.True(t, errors.Is(err, apperrors.ErrMissingParameter))

	_, err = svc.Compare(context.Background(), "A,B,C,D,E")
	assert.True(t, errors.Is(err, apperrors.ErrTooManyCompareIDs))
}

func TestCompareStoreErrorPropagates(t *testing.T) {
	storeErr := apperrors.NewStoreError(errors.New("connection reset"), "failed to fetch courses")
	svc := NewCourseService(&stubStore{findErr: storeErr})

	_, err := svc.Compare(context.Background(), "CC1,CC2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStoreFailure))
}

func TestGetCourse(t *testing.T) {
	course := sampleCourse("CC1001", 4.0)
	svc := NewCourseService(&stubStore{getRow: &course})

	resp, err := svc.GetCourse(context.Background(), "CC1001")
	require.NoError(t, err)
	assert.Equal(t, "CC1001", resp.CourseID)
	assert.Equal(t, "4.0", resp.Rating)

	_, err = svc.GetCourse(context.Background(), "  ")
	assert.True(t, errors.Is(err, apperrors.ErrMissingParameter))
}

func TestListDepartmentsNeverNil(t *testing.T) {
	svc := NewCourseService(&stubStore{departments: nil})

	data, err := svc.ListDepartments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data.Departments)
	assert.Empty(t, data.Departments)
}
