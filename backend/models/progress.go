package models

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress is created lazily on the first write for a lesson and
// updated in place afterwards. TimeSpent only ever grows.
type LessonProgress struct {
	gorm.Model
	EnrollmentID uint       `json:"enrollment_id" gorm:"uniqueIndex:idx_enrollment_lesson;not null"`
	LessonID     uint       `json:"lesson_id" gorm:"uniqueIndex:idx_enrollment_lesson;not null"`
	IsCompleted  bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt  *time.Time `json:"completed_at"`
	TimeSpent    int64      `json:"time_spent" gorm:"default:0"` // seconds
}
