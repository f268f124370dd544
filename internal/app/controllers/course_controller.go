package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecompass/coursecompass/internal/app/models/dto"
	"github.com/coursecompass/coursecompass/internal/app/search"
	"github.com/coursecompass/coursecompass/internal/app/services"
	"github.com/coursecompass/coursecompass/internal/middleware"
)

// filterParams are the explicit-path query parameters forwarded to the
// validator. Anything else on the query string is ignored.
var filterParams = []string{
	"q", "department", "level", "delivery_mode", "year_offered",
	"min_fee", "max_fee", "min_rating", "max_rating",
	"min_credits", "max_credits", "min_duration_weeks", "max_duration_weeks",
	"page", "per_page", "sort_by", "sort_dir",
}

// CourseController handles catalog search and comparison requests
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// SearchCourses handles the free-text search path
// @Summary Search courses with a natural-language question
// @Description Compiles a free-form question into catalog filters and returns matching courses
// @Tags courses
// @Produce json
// @Param query query string true "Free-form question, e.g. 'online PG data courses under 60000'"
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse,meta=dto.PageMeta}
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	question := ctx.Query("query")

	result, err := c.courseService.SearchByText(ctx.Request.Context(), question, ctx.Query("page"), ctx.Query("per_page"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(result.Courses, result.Meta, "courses retrieved successfully"))
}

// ListCourses handles the explicit-parameter search path
// @Summary List courses with explicit filters
// @Description Returns catalog entries filtered, sorted and paginated by query parameters
// @Tags courses
// @Produce json
// @Param q query string false "Partial match against course name or department"
// @Param department query string false "Exact department name"
// @Param level query string false "Course level" Enums(UG, PG)
// @Param delivery_mode query string false "Delivery mode" Enums(online, offline, hybrid)
// @Param year_offered query int false "Year the course is offered (1900-2100)"
// @Param min_fee query int false "Minimum tuition fee in INR"
// @Param max_fee query int false "Maximum tuition fee in INR"
// @Param min_rating query number false "Minimum rating (0-5)"
// @Param max_rating query number false "Maximum rating (0-5)"
// @Param min_credits query int false "Minimum credits"
// @Param max_credits query int false "Maximum credits"
// @Param min_duration_weeks query int false "Minimum duration in weeks"
// @Param max_duration_weeks query int false "Maximum duration in weeks"
// @Param sort_by query string false "Sort column (course_name, rating, tuition_fee_inr, credits, duration_weeks, year_offered, ...)"
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse,meta=dto.PageMeta}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	raw := search.RawFilters{}
	for _, param := range filterParams {
		if value := ctx.Query(param); value != "" {
			raw[param] = value
		}
	}

	result, err := c.courseService.SearchByParams(ctx.Request.Context(), raw)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(result.Courses, result.Meta, "courses retrieved successfully"))
}

// CompareCourses handles the comparison path
// @Summary Compare a small set of courses by id
// @Description Returns the requested courses in input order, the ids that were not found, and aggregate insights
// @Tags courses
// @Produce json
// @Param ids query string true "Comma-separated course ids (max 4 distinct)"
// @Success 200 {object} dto.APIResponse{data=dto.CompareData}
// @Failure 400 {object} dto.ErrorResponse "Missing, malformed or too many ids"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/compare [get]
func (c *CourseController) CompareCourses(ctx *gin.Context) {
	data, err := c.courseService.Compare(ctx.Request.Context(), ctx.Query("ids"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(data, "courses compared successfully"))
}

// GetCourseByID handles single-course retrieval
// @Summary Get a course by id
// @Tags courses
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "course retrieved successfully"))
}

// ListDepartments handles the department browse endpoint
// @Summary List departments with course counts
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListData}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *CourseController) ListDepartments(ctx *gin.Context) {
	data, err := c.courseService.ListDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(data, "departments retrieved successfully"))
}
