package routes

import (
	"log"

	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
	"project/backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	catalog := services.NewCatalogService(db)
	enrollmentService := services.NewEnrollmentService(db, logger)
	progressService := services.NewProgressService(db, catalog)
	recommendationService := services.NewRecommendationService(db, catalog)
	statsService := services.NewStatsService(db)

	authMiddleware := middleware.AuthMiddleware(cfg)
	api := app.Group("/api", authMiddleware)

	coursesController := controllers.NewCoursesController(db, catalog, cfg)
	api.Get("/courses/available", coursesController.GetAvailableCourses)
	api.Get("/courses/:id", coursesController.GetCourseDetails)

	enrollmentsController := controllers.NewEnrollmentsController(enrollmentService, cfg)
	api.Post("/courses/:id/enroll", enrollmentsController.Enroll)
	api.Delete("/enrollments/:id", enrollmentsController.Cancel)
	api.Get("/enrollments", enrollmentsController.List)

	progressController := controllers.NewProgressController(progressService, cfg)
	api.Post("/lessons/:id/progress", progressController.UpdateLessonProgress)
	api.Post("/lessons/:id/time", progressController.RecordTime)
	api.Get("/courses/:id/progress", progressController.GetCourseProgress)
	api.Get("/courses/:id/progress/details", progressController.GetDetailedCourseProgress)

	recommendationsController := controllers.NewRecommendationsController(recommendationService, cfg)
	api.Get("/recommendations/next-lesson", recommendationsController.NextLesson)
	api.Get("/recommendations/courses", recommendationsController.Courses)

	statsController := controllers.NewStatsController(statsService, cfg)
	api.Get("/stats", statsController.GetLearningStats)
}
