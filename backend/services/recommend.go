package services

import (
	"sort"

	"project/backend/models"

	"gorm.io/gorm"
)

// RecommendationService produces the two read-side suggestions: the
// next lesson to resume and courses worth enrolling in next.
type RecommendationService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewRecommendationService(db *gorm.DB, catalog *CatalogService) *RecommendationService {
	return &RecommendationService{db: db, catalog: catalog}
}

// NextLesson walks the learner's active enrollments, most recently
// touched first, and returns the first lesson without a completed
// progress row. A nil recommendation with a nil error means there is
// nothing to resume.
func (s *RecommendationService) NextLesson(userID uint) (*models.NextLessonRecommendation, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ? AND is_completed = ?", userID, false).
		Order("last_activity_at desc, enrolled_at asc").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}

	for _, enrollment := range enrollments {
		chapters, err := s.catalog.GetCourseStructure(enrollment.CourseID)
		if err != nil {
			return nil, err
		}

		var rows []models.LessonProgress
		if err := s.db.Where("enrollment_id = ? AND is_completed = ?", enrollment.ID, true).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		completed := make(map[uint]bool, len(rows))
		for _, row := range rows {
			completed[row.LessonID] = true
		}

		for _, chapter := range chapters {
			for _, lesson := range chapter.Lessons {
				if completed[lesson.ID] {
					continue
				}
				var course models.Course
				if err := s.db.First(&course, enrollment.CourseID).Error; err != nil {
					return nil, err
				}
				return &models.NextLessonRecommendation{
					CourseID:     course.ID,
					CourseTitle:  course.Title,
					ChapterID:    chapter.ID,
					ChapterTitle: chapter.Title,
					LessonID:     lesson.ID,
					LessonTitle:  lesson.Title,
					Duration:     lesson.Duration,
				}, nil
			}
		}
	}

	return nil, nil
}

// RecommendCourses ranks published, not-yet-enrolled courses that share
// at least one skill tag with the learner's completed courses. Ordering
// is featured first, then student count, then course ID for
// determinism.
func (s *RecommendationService) RecommendCourses(userID uint, limit int) ([]models.CourseRecommendation, error) {
	recommendations := []models.CourseRecommendation{}
	if limit <= 0 {
		return recommendations, nil
	}

	var completedCourseIDs []uint
	if err := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Pluck("course_id", &completedCourseIDs).Error; err != nil {
		return nil, err
	}
	if len(completedCourseIDs) == 0 {
		return recommendations, nil
	}

	var skillIDs []uint
	if err := s.db.Table("course_skills").
		Where("course_id IN ?", completedCourseIDs).
		Distinct("skill_id").
		Pluck("skill_id", &skillIDs).Error; err != nil {
		return nil, err
	}
	if len(skillIDs) == 0 {
		return recommendations, nil
	}

	var enrolledCourseIDs []uint
	if err := s.db.Model(&models.Enrollment{}).
		Where("user_id = ?", userID).
		Pluck("course_id", &enrolledCourseIDs).Error; err != nil {
		return nil, err
	}

	var candidateIDs []uint
	if err := s.db.Table("course_skills").
		Where("skill_id IN ?", skillIDs).
		Distinct("course_id").
		Pluck("course_id", &candidateIDs).Error; err != nil {
		return nil, err
	}
	if len(candidateIDs) == 0 {
		return recommendations, nil
	}

	var candidates []models.Course
	query := s.db.Where("id IN ? AND is_published = ?", candidateIDs, true)
	if len(enrolledCourseIDs) > 0 {
		query = query.Where("id NOT IN ?", enrolledCourseIDs)
	}
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].IsFeatured != candidates[j].IsFeatured {
			return candidates[i].IsFeatured
		}
		if candidates[i].StudentsCount != candidates[j].StudentsCount {
			return candidates[i].StudentsCount > candidates[j].StudentsCount
		}
		return candidates[i].ID < candidates[j].ID
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	known := make(map[uint]bool, len(skillIDs))
	for _, id := range skillIDs {
		known[id] = true
	}
	for _, course := range candidates {
		tags, err := s.catalog.GetSkillTags(course.ID)
		if err != nil {
			return nil, err
		}
		shared := 0
		for _, tag := range tags {
			if known[tag] {
				shared++
			}
		}
		recommendations = append(recommendations, models.CourseRecommendation{
			CourseID:      course.ID,
			Title:         course.Title,
			IsFeatured:    course.IsFeatured,
			StudentsCount: course.StudentsCount,
			SharedSkills:  shared,
		})
	}

	return recommendations, nil
}
