package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/coursecompass/coursecompass/internal/app/models"
	appRepos "github.com/coursecompass/coursecompass/internal/app/repositories"
)

// sampleCatalog is a small representative catalog inserted into empty
// databases so the search paths have something to answer with.
var sampleCatalog = []models.Course{
	{CourseID: "CC1001", CourseName: "Introduction to Programming", Department: "Computer Science", Level: models.LevelUG, DeliveryMode: models.DeliveryOnline, Credits: 4, DurationWeeks: 12, Rating: 4.3, TuitionFeeINR: 35000, YearOffered: 2024},
	{CourseID: "CC1002", CourseName: "Data Structures and Algorithms", Department: "Computer Science", Level: models.LevelUG, DeliveryMode: models.DeliveryHybrid, Credits: 5, DurationWeeks: 16, Rating: 4.6, TuitionFeeINR: 48000, YearOffered: 2024},
	{CourseID: "CC2001", CourseName: "Machine Learning Foundations", Department: "Data Science", Level: models.LevelPG, DeliveryMode: models.DeliveryOnline, Credits: 4, DurationWeeks: 14, Rating: 4.7, TuitionFeeINR: 82000, YearOffered: 2025},
	{CourseID: "CC2002", CourseName: "Applied Statistics", Department: "Data Science", Level: models.LevelPG, DeliveryMode: models.DeliveryOffline, Credits: 3, DurationWeeks: 10, Rating: 4.1, TuitionFeeINR: 56000, YearOffered: 2024},
	{CourseID: "CC3001", CourseName: "Principles of Marketing", Department: "Marketing", Level: models.LevelUG, DeliveryMode: models.DeliveryOffline, Credits: 3, DurationWeeks: 12, Rating: 3.9, TuitionFeeINR: 30000, YearOffered: 2023},
	{CourseID: "CC3002", CourseName: "Strategic Management", Department: "Management", Level: models.LevelPG, DeliveryMode: models.DeliveryHybrid, Credits: 4, DurationWeeks: 12, Rating: 4.4, TuitionFeeINR: 95000, YearOffered: 2025},
	{CourseID: "CC4001", CourseName: "Corporate Finance", Department: "Finance", Level: models.LevelPG, DeliveryMode: models.DeliveryOnline, Credits: 4, DurationWeeks: 12, Rating: 4.2, TuitionFeeINR: 78000, YearOffered: 2024},
	{CourseID: "CC5001", CourseName: "User Experience Design", Department: "Design", Level: models.LevelUG, DeliveryMode: models.DeliveryOnline, Credits: 3, DurationWeeks: 8, Rating: 4.5, TuitionFeeINR: 42000, YearOffered: 2025},
	{CourseID: "CC6001", CourseName: "Thermodynamics", Department: "Engineering", Level: models.LevelUG, DeliveryMode: models.DeliveryOffline, Credits: 5, DurationWeeks: 16, Rating: 4.0, TuitionFeeINR: 52000, YearOffered: 2023},
	{CourseID: "CC7001", CourseName: "World Art History", Department: "Arts", Level: models.LevelUG, DeliveryMode: models.DeliveryHybrid, Credits: 2, DurationWeeks: 8, Rating: 3.8, TuitionFeeINR: 18000, YearOffered: 2024},
}

// CreateSampleCatalog inserts the sample courses when the catalog is empty.
func CreateSampleCatalog(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	total, err := courseRepo.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog size: %w", err)
	}
	if total > 0 {
		lgr.Debug().Int64("courses", total).Msg("Catalog already populated, skipping seed")
		return nil
	}

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	insert := sb.Insert("courses").Columns(
		"course_id", "course_name", "department", "level", "delivery_mode",
		"credits", "duration_weeks", "rating", "tuition_fee_inr", "year_offered",
	)
	for _, c := range sampleCatalog {
		insert = insert.Values(
			c.CourseID, c.CourseName, c.Department, c.Level, c.DeliveryMode,
			c.Credits, c.DurationWeeks, c.Rating, c.TuitionFeeINR, c.YearOffered,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build seed insert: %w", err)
	}
	if _, err := dbPool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to seed sample catalog: %w", err)
	}

	lgr.Info().Int("courses", len(sampleCatalog)).Msg("Sample catalog seeded")
	return nil
}
