package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"project/backend/models"

	"gorm.io/gorm"
)

const (
	aggregateRetries = 3
	retryBackoff     = 25 * time.Millisecond
)

// ProgressService upserts per-lesson progress and recomputes the
// enrollment aggregates after every write. The recompute re-counts
// completed rows and the live lesson total inside the same transaction
// rather than incrementing counters, so the aggregates can never drift
// from the progress rows.
type ProgressService struct {
	db      *gorm.DB
	catalog *CatalogService
	locks   *enrollmentLocks
}

func NewProgressService(db *gorm.DB, catalog *CatalogService) *ProgressService {
	return &ProgressService{db: db, catalog: catalog, locks: newEnrollmentLocks()}
}

// RecordLessonCompletion upserts the lesson progress row, toggling its
// completion state and adding timeSpentDelta seconds, then recomputes
// the enrollment aggregates.
func (s *ProgressService) RecordLessonCompletion(lessonID, userID uint, completed bool, timeSpentDelta int64) (*models.Enrollment, error) {
	return s.write(lessonID, userID, timeSpentDelta, &completed)
}

// RecordTime adds timeSpentDelta seconds without touching the
// completion state.
func (s *ProgressService) RecordTime(lessonID, userID uint, timeSpentDelta int64) (*models.Enrollment, error) {
	return s.write(lessonID, userID, timeSpentDelta, nil)
}

func (s *ProgressService) write(lessonID, userID uint, delta int64, completed *bool) (*models.Enrollment, error) {
	if delta < 0 {
		return nil, fmt.Errorf("%w: time delta must be non-negative", ErrInvalidArgument)
	}

	courseID, err := s.catalog.CourseForLesson(lessonID)
	if err != nil {
		return nil, err
	}

	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	// Writes for the same enrollment are serialized; the lock is held
	// across the whole upsert-and-recompute transaction.
	mu := s.locks.lock(enrollment.ID)
	defer mu.Unlock()

	var lastErr error
	backoff := retryBackoff
	for attempt := 0; attempt < aggregateRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		updated, err := s.writeTx(enrollment.ID, courseID, lessonID, delta, completed)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, ErrNotEnrolled) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrConflict, lastErr)
}

func (s *ProgressService) writeTx(enrollmentID, courseID, lessonID uint, delta int64, completed *bool) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var progress models.LessonProgress
		err := tx.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.LessonProgress{EnrollmentID: enrollmentID, LessonID: lessonID}
		} else if err != nil {
			return err
		}

		if completed != nil && *completed != progress.IsCompleted {
			progress.IsCompleted = *completed
			if *completed {
				at := now
				progress.CompletedAt = &at
			} else {
				progress.CompletedAt = nil
			}
		}
		progress.TimeSpent += delta

		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		// Enrollment may have been cancelled between the lookup and
		// acquiring the lock.
		if err := tx.First(&enrollment, enrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotEnrolled
			}
			return err
		}

		var completedCount int64
		if err := tx.Model(&models.LessonProgress{}).
			Where("enrollment_id = ? AND is_completed = ?", enrollmentID, true).
			Count(&completedCount).Error; err != nil {
			return err
		}

		totalLessons, err := countCourseLessons(tx, courseID)
		if err != nil {
			return err
		}

		wasCompleted := enrollment.IsCompleted
		enrollment.CompletedLessons = int(completedCount)
		enrollment.ProgressPercent = progressPercent(int(completedCount), totalLessons)
		enrollment.IsCompleted = enrollment.ProgressPercent == 100
		if enrollment.IsCompleted && !wasCompleted {
			at := now
			enrollment.CompletedAt = &at
		}
		if !enrollment.IsCompleted {
			enrollment.CompletedAt = nil
		}
		enrollment.LastActivityAt = now

		return tx.Save(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// progressPercent derives the 0-100 percentage; a course with no
// lessons is always at 0, never vacuously complete.
func progressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// GetCourseProgress returns the enrollment aggregate for the learner's
// enrollment in the course.
func (s *ProgressService) GetCourseProgress(courseID, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}
	return &enrollment, nil
}

// GetDetailedCourseProgress returns the chapter/lesson tree in catalog
// order with each lesson annotated by the learner's progress row, or a
// not-started entry when none exists.
func (s *ProgressService) GetDetailedCourseProgress(courseID, userID uint) (*models.CourseProgressDetail, error) {
	enrollment, err := s.GetCourseProgress(courseID, userID)
	if err != nil {
		return nil, err
	}

	chapters, err := s.catalog.GetCourseStructure(courseID)
	if err != nil {
		return nil, err
	}

	var rows []models.LessonProgress
	if err := s.db.Where("enrollment_id = ?", enrollment.ID).Find(&rows).Error; err != nil {
		return nil, err
	}
	byLesson := make(map[uint]models.LessonProgress, len(rows))
	for _, row := range rows {
		byLesson[row.LessonID] = row
	}

	detail := &models.CourseProgressDetail{
		CourseID:   courseID,
		Enrollment: *enrollment,
		Chapters:   make([]models.ChapterProgress, 0, len(chapters)),
	}
	for _, chapter := range chapters {
		cp := models.ChapterProgress{
			ChapterID: chapter.ID,
			Title:     chapter.Title,
			Lessons:   make([]models.LessonProgressEntry, 0, len(chapter.Lessons)),
		}
		for _, lesson := range chapter.Lessons {
			entry := models.LessonProgressEntry{
				LessonID: lesson.ID,
				Title:    lesson.Title,
				Duration: lesson.Duration,
			}
			if row, ok := byLesson[lesson.ID]; ok {
				entry.Started = true
				entry.IsCompleted = row.IsCompleted
				entry.CompletedAt = row.CompletedAt
				entry.TimeSpent = row.TimeSpent
			}
			cp.Lessons = append(cp.Lessons, entry)
		}
		detail.Chapters = append(detail.Chapters, cp)
	}

	return detail, nil
}
