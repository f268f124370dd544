package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	Course *CourseRepository
}

// NewRepositories creates all repositories with the shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Course: NewCourseRepository(db),
	}
}
