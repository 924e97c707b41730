package services

import (
	"errors"
	"log"
	"time"

	"project/backend/models"

	"gorm.io/gorm"
)

// EnrollmentService owns the enrollment lifecycle and keeps the
// course-level student counter in step with enroll/cancel.
type EnrollmentService struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewEnrollmentService(db *gorm.DB, logger *log.Logger) *EnrollmentService {
	return &EnrollmentService{db: db, logger: logger}
}

// Enroll creates an enrollment for (userID, courseID). The course must
// exist and be published; a learner can hold at most one enrollment per
// course.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseUnavailable
		}
		return nil, err
	}
	if !course.IsPublished {
		return nil, ErrCourseUnavailable
	}

	var existing models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	enrollment := models.Enrollment{
		UserID:         userID,
		CourseID:       courseID,
		EnrolledAt:     now,
		LastActivityAt: now,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}

	// The counter is a display aggregate; a failed update is logged for
	// reconciliation instead of rolling the enrollment back.
	if err := s.incrementStudents(courseID); err != nil {
		s.logger.Printf("failed to increment students counter for course %d: %v", courseID, err)
	}

	return &enrollment, nil
}

// Cancel deletes the requester's own enrollment together with its
// lesson progress rows.
func (s *EnrollmentService) Cancel(enrollmentID, requesterID uint) error {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if enrollment.UserID != requesterID {
		return ErrForbidden
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("enrollment_id = ?", enrollment.ID).
			Delete(&models.LessonProgress{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&enrollment).Error
	})
	if err != nil {
		return err
	}

	if err := s.decrementStudents(enrollment.CourseID); err != nil {
		s.logger.Printf("failed to decrement students counter for course %d: %v", enrollment.CourseID, err)
	}

	return nil
}

func (s *EnrollmentService) Get(enrollmentID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (s *EnrollmentService) ListByUser(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("user_id = ?", userID).
		Order("last_activity_at desc, enrolled_at asc").
		Find(&enrollments).Error
	return enrollments, err
}

// Counter updates are single atomic statements, never read-modify-write.
func (s *EnrollmentService) incrementStudents(courseID uint) error {
	return s.db.Model(&models.Course{}).
		Where("id = ?", courseID).
		UpdateColumn("students_count", gorm.Expr("students_count + 1")).Error
}

// decrementStudents floors at zero: decrementing an already-zero
// counter is a no-op.
func (s *EnrollmentService) decrementStudents(courseID uint) error {
	return s.db.Model(&models.Course{}).
		Where("id = ? AND students_count > 0", courseID).
		UpdateColumn("students_count", gorm.Expr("students_count - 1")).Error
}
