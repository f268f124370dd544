package dto

import (
	"strconv"

	"github.com/coursecompass/coursecompass/internal/app/models"
)

// CourseResponse is the serialized form of a catalog entry. Rating is a
// decimal-formatted string at the boundary only; internally it stays numeric.
type CourseResponse struct {
	CourseID      string `json:"course_id" example:"CC1042"`
	CourseName    string `json:"course_name" example:"Advanced Machine Learning"`
	Department    string `json:"department" example:"Data Science"`
	Level         string `json:"level" example:"PG" enums:"UG,PG"`
	DeliveryMode  string `json:"delivery_mode" example:"online" enums:"online,offline,hybrid"`
	Credits       int    `json:"credits" example:"4"`
	DurationWeeks int    `json:"duration_weeks" example:"12"`
	Rating        string `json:"rating" example:"4.5"`
	TuitionFeeINR int64  `json:"tuition_fee_inr" example:"45000"`
	YearOffered   int    `json:"year_offered" example:"2024"`
}

// FormatRating renders a rating with one decimal place for display.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(c models.Course) CourseResponse {
	return CourseResponse{
		CourseID:      c.CourseID,
		CourseName:    c.CourseName,
		Department:    c.Department,
		Level:         c.Level,
		DeliveryMode:  c.DeliveryMode,
		Credits:       c.Credits,
		DurationWeeks: c.DurationWeeks,
		Rating:        FormatRating(c.Rating),
		TuitionFeeINR: c.TuitionFeeINR,
		YearOffered:   c.YearOffered,
	}
}

// FromCourses converts a slice of courses, never returning nil so the JSON
// data field is always an array.
func FromCourses(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}

// CompareMeta summarizes a comparison request.
type CompareMeta struct {
	RequestedCount int    `json:"requested_count" example:"3"`
	FoundCount     int    `json:"found_count" example:"2"`
	MissingCount   int    `json:"missing_count" example:"1"`
	ComparisonDate string `json:"comparison_date" example:"2026-08-29T12:01:05Z"`
}

// FeeInsight holds min/max/average tuition fee over the compared courses.
type FeeInsight struct {
	Min int64 `json:"min" example:"30000"`
	Max int64 `json:"max" example:"80000"`
	Avg int64 `json:"avg" example:"55000"`
}

// RatingInsight holds min/max/average rating over the compared courses.
type RatingInsight struct {
	Min float64 `json:"min" example:"3.8"`
	Max float64 `json:"max" example:"4.6"`
	Avg float64 `json:"avg" example:"4.2"`
}

// CreditsInsight holds min/max/average credits over the compared courses.
type CreditsInsight struct {
	Min int     `json:"min" example:"3"`
	Max int     `json:"max" example:"5"`
	Avg float64 `json:"avg" example:"4.0"`
}

// CompareInsights aggregates statistics over the courses that were found.
type CompareInsights struct {
	Fee     FeeInsight     `json:"fee"`
	Rating  RatingInsight  `json:"rating"`
	Credits CreditsInsight `json:"credits"`
}

// CompareData is the comparison response payload.
type CompareData struct {
	Courses    []CourseResponse `json:"courses"`
	MissingIDs []string         `json:"missing_ids"`
	Meta       CompareMeta      `json:"meta"`
	Insights   *CompareInsights `json:"insights,omitempty"`
}

// DepartmentListData wraps the department browse payload.
type DepartmentListData struct {
	Departments []models.DepartmentCount `json:"departments"`
}
