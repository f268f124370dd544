package models

// Course level values
const (
	LevelUG = "UG"
	LevelPG = "PG"
)

// Course delivery mode values
const (
	DeliveryOnline  = "online"
	DeliveryOffline = "offline"
	DeliveryHybrid  = "hybrid"
)

// Course represents a single catalog entry. CourseID is the identity; all
// other fields are attributes owned by the ingestion pipeline.
type Course struct {
	CourseID      string  `json:"course_id"`
	CourseName    string  `json:"course_name"`
	Department    string  `json:"department"`
	Level         string  `json:"level"`
	DeliveryMode  string  `json:"delivery_mode"`
	Credits       int     `json:"credits"`
	DurationWeeks int     `json:"duration_weeks"`
	Rating        float64 `json:"rating"`
	TuitionFeeINR int64   `json:"tuition_fee_inr"`
	YearOffered   int     `json:"year_offered"`
}

// DepartmentCount is a department name with the number of catalog entries in it.
type DepartmentCount struct {
	Department  string `json:"department"`
	CourseCount int64  `json:"course_count"`
}
