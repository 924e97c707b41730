package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment binds a learner to a course and carries the derived
// progress aggregates. ProgressPercent, CompletedLessons, IsCompleted
// and CompletedAt are written only by the progress recompute — callers
// never set them directly.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID         uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	ProgressPercent  int        `json:"progress_percent" gorm:"default:0"` // 0-100
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	IsCompleted      bool       `json:"is_completed" gorm:"default:false"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	LastActivityAt   time.Time  `json:"last_activity_at"`
}
