package services

import "errors"

// Typed failures returned by the engine. Controllers map these onto
// HTTP statuses; nothing here is swallowed.
var (
	ErrAlreadyEnrolled   = errors.New("already enrolled in this course")
	ErrCourseUnavailable = errors.New("course is not available for enrollment")
	ErrNotEnrolled       = errors.New("not enrolled in this course")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrNotFound          = errors.New("enrollment not found")
	ErrForbidden         = errors.New("enrollment belongs to another user")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrConflict          = errors.New("conflicting concurrent update")
)
