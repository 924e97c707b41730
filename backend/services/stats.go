package services

import (
	"project/backend/models"

	"gorm.io/gorm"
)

// StatsService folds a learner's enrollments and lesson progress rows
// into the dashboard summary.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) LearningStats(userID uint) (*models.LearningStats, error) {
	stats := &models.LearningStats{}

	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return stats, nil
	}

	stats.TotalCourses = len(enrollments)
	progressSum := 0
	enrollmentIDs := make([]uint, 0, len(enrollments))
	for _, enrollment := range enrollments {
		enrollmentIDs = append(enrollmentIDs, enrollment.ID)
		progressSum += enrollment.ProgressPercent
		if enrollment.IsCompleted {
			stats.CompletedCourses++
		}
	}
	stats.InProgressCourses = stats.TotalCourses - stats.CompletedCourses
	stats.AverageProgress = float64(progressSum) / float64(len(enrollments))

	if err := s.db.Model(&models.LessonProgress{}).
		Where("enrollment_id IN ?", enrollmentIDs).
		Select("COALESCE(SUM(time_spent), 0)").
		Scan(&stats.TotalTimeSpent).Error; err != nil {
		return nil, err
	}

	var completedLessons int64
	if err := s.db.Model(&models.LessonProgress{}).
		Where("enrollment_id IN ? AND is_completed = ?", enrollmentIDs, true).
		Count(&completedLessons).Error; err != nil {
		return nil, err
	}
	stats.CompletedLessons = int(completedLessons)

	return stats, nil
}
