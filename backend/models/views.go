package models

import "time"

// LessonProgressEntry annotates a catalog lesson with the learner's
// progress. Started is false when no LessonProgress row exists yet.
type LessonProgressEntry struct {
	LessonID    uint       `json:"lesson_id"`
	Title       string     `json:"title"`
	Duration    int        `json:"duration"`
	Started     bool       `json:"started"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	TimeSpent   int64      `json:"time_spent"`
}

type ChapterProgress struct {
	ChapterID uint                  `json:"chapter_id"`
	Title     string                `json:"title"`
	Lessons   []LessonProgressEntry `json:"lessons"`
}

// CourseProgressDetail is the full chapter/lesson tree in catalog order,
// annotated per lesson, plus the enrollment aggregate.
type CourseProgressDetail struct {
	CourseID   uint              `json:"course_id"`
	Enrollment Enrollment        `json:"enrollment"`
	Chapters   []ChapterProgress `json:"chapters"`
}

type NextLessonRecommendation struct {
	CourseID     uint   `json:"course_id"`
	CourseTitle  string `json:"course_title"`
	ChapterID    uint   `json:"chapter_id"`
	ChapterTitle string `json:"chapter_title"`
	LessonID     uint   `json:"lesson_id"`
	LessonTitle  string `json:"lesson_title"`
	Duration     int    `json:"duration"`
}

type CourseRecommendation struct {
	CourseID      uint   `json:"course_id"`
	Title         string `json:"title"`
	IsFeatured    bool   `json:"is_featured"`
	StudentsCount uint   `json:"students_count"`
	SharedSkills  int    `json:"shared_skills"`
}

// LearningStats is the dashboard roll-up over all of a learner's
// enrollments and lesson progress rows.
type LearningStats struct {
	TotalCourses      int     `json:"total_courses"`
	CompletedCourses  int     `json:"completed_courses"`
	InProgressCourses int     `json:"in_progress_courses"`
	TotalTimeSpent    int64   `json:"total_time_spent"`
	CompletedLessons  int     `json:"completed_lessons"`
	AverageProgress   float64 `json:"average_progress"`
}
