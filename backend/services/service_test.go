package services

import (
	"fmt"
	"io"
	"log"
	"testing"

	"project/backend/models"
	"project/backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database shared between
	// goroutines.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, utils.Migrate(db))
	return db
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// seedCourse creates a course with one chapter per entry in
// lessonsPerChapter, each holding that many lessons in order.
func seedCourse(t *testing.T, db *gorm.DB, published bool, lessonsPerChapter ...int) models.Course {
	t.Helper()

	course := models.Course{Title: "Test Course", IsPublished: published}
	require.NoError(t, db.Create(&course).Error)

	for ci, count := range lessonsPerChapter {
		chapter := models.Chapter{
			CourseID: course.ID,
			Title:    fmt.Sprintf("Chapter %d", ci+1),
			Position: ci + 1,
		}
		require.NoError(t, db.Create(&chapter).Error)

		for li := 0; li < count; li++ {
			lesson := models.Lesson{
				ChapterID: chapter.ID,
				Title:     fmt.Sprintf("Lesson %d.%d", ci+1, li+1),
				Duration:  10,
				Position:  li + 1,
			}
			require.NoError(t, db.Create(&lesson).Error)
		}
	}

	return course
}

// courseLessons returns the course's lessons flattened in catalog
// order.
func courseLessons(t *testing.T, db *gorm.DB, courseID uint) []models.Lesson {
	t.Helper()

	chapters, err := NewCatalogService(db).GetCourseStructure(courseID)
	require.NoError(t, err)

	var lessons []models.Lesson
	for _, chapter := range chapters {
		lessons = append(lessons, chapter.Lessons...)
	}
	return lessons
}

func seedSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()

	skill := models.Skill{Name: name}
	require.NoError(t, db.Create(&skill).Error)
	return skill
}

func tagCourse(t *testing.T, db *gorm.DB, course models.Course, skills ...models.Skill) {
	t.Helper()

	for i := range skills {
		require.NoError(t, db.Model(&course).Association("Skills").Append(&skills[i]))
	}
}
