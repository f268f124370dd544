package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coursecompass/coursecompass/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
) {
	router.GET("/health", healthController.Health)

	// API version group
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/compare", courseController.CompareCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", courseController.ListDepartments)
	}
}
