package controllers

import (
	"errors"
	"strconv"

	"project/backend/config"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CoursesController serves the read-only catalog views the progress
// screens need. Catalog authoring lives in the admin system.
type CoursesController struct {
	DB      *gorm.DB
	Catalog *services.CatalogService
	Cfg     *config.Config
}

func NewCoursesController(db *gorm.DB, catalog *services.CatalogService, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Catalog: catalog, Cfg: cfg}
}

// GetAvailableCourses lists published courses.
func (cc *CoursesController) GetAvailableCourses(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var courses []models.Course
	if err := cc.DB.Where("is_published = ?", true).
		Order("is_featured desc, students_count desc, id asc").
		Find(&courses).Error; err != nil {
		return serviceError(c, err)
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		result = append(result, fiber.Map{
			"id":             course.ID,
			"title":          course.Title,
			"description":    course.Description,
			"is_featured":    course.IsFeatured,
			"students_count": course.StudentsCount,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetCourseDetails returns a published course with its chapter/lesson
// tree and the caller's enrollment state.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Where("is_published = ?", true).First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return serviceError(c, services.ErrCourseUnavailable)
		}
		return serviceError(c, err)
	}

	chapters, err := cc.Catalog.GetCourseStructure(course.ID)
	if err != nil {
		return serviceError(c, err)
	}

	var enrollment models.Enrollment
	isEnrolled := cc.DB.Where("user_id = ? AND course_id = ?", userID, course.ID).
		First(&enrollment).Error == nil

	response := fiber.Map{
		"course": fiber.Map{
			"id":             course.ID,
			"title":          course.Title,
			"description":    course.Description,
			"is_featured":    course.IsFeatured,
			"students_count": course.StudentsCount,
		},
		"chapters":    chapters,
		"is_enrolled": isEnrolled,
	}
	if isEnrolled {
		response["enrollment"] = enrollment
	}

	return utils.Success(c, fiber.StatusOK, response)
}
