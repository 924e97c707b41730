package services

import (
	"errors"

	"project/backend/models"

	"gorm.io/gorm"
)

// CatalogService is the read-only view of the course catalog the engine
// works against. It never caches: lesson counts and structure are read
// fresh on every call so that structural edits made by the authoring
// system are reflected immediately.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// GetCourseStructure returns the course's chapters in position order,
// each with its lessons in position order.
func (s *CatalogService) GetCourseStructure(courseID uint) ([]models.Chapter, error) {
	var chapters []models.Chapter
	err := s.DB.Where("course_id = ?", courseID).
		Order("position asc, id asc").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.position asc, lessons.id asc")
		}).
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

func (s *CatalogService) IsPublished(courseID uint) (bool, error) {
	var course models.Course
	if err := s.DB.Select("is_published").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return course.IsPublished, nil
}

// GetSkillTags returns the IDs of the skills tagged on a course.
func (s *CatalogService) GetSkillTags(courseID uint) ([]uint, error) {
	var ids []uint
	err := s.DB.Table("course_skills").
		Where("course_id = ?", courseID).
		Pluck("skill_id", &ids).Error
	return ids, err
}

func (s *CatalogService) CountLessons(courseID uint) (int, error) {
	return countCourseLessons(s.DB, courseID)
}

// CourseForLesson resolves a lesson to its owning course.
func (s *CatalogService) CourseForLesson(lessonID uint) (uint, error) {
	var lesson models.Lesson
	if err := s.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrLessonNotFound
		}
		return 0, err
	}
	var chapter models.Chapter
	if err := s.DB.First(&chapter, lesson.ChapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrLessonNotFound
		}
		return 0, err
	}
	return chapter.CourseID, nil
}

// countCourseLessons is shared with the progress recompute, which has to
// count inside its own transaction.
func countCourseLessons(db *gorm.DB, courseID uint) (int, error) {
	var n int64
	err := db.Model(&models.Lesson{}).
		Joins("JOIN chapters ON chapters.id = lessons.chapter_id AND chapters.deleted_at IS NULL").
		Where("chapters.course_id = ?", courseID).
		Count(&n).Error
	return int(n), err
}
