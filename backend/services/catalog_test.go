package services

import (
	"testing"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCourseStructureOrdering(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	course := models.Course{Title: "Ordered", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	// Insert out of order; positions decide.
	second := models.Chapter{CourseID: course.ID, Title: "Second", Position: 2}
	require.NoError(t, db.Create(&second).Error)
	first := models.Chapter{CourseID: course.ID, Title: "First", Position: 1}
	require.NoError(t, db.Create(&first).Error)

	require.NoError(t, db.Create(&models.Lesson{ChapterID: first.ID, Title: "1.2", Position: 2}).Error)
	require.NoError(t, db.Create(&models.Lesson{ChapterID: first.ID, Title: "1.1", Position: 1}).Error)
	require.NoError(t, db.Create(&models.Lesson{ChapterID: second.ID, Title: "2.1", Position: 1}).Error)

	chapters, err := catalog.GetCourseStructure(course.ID)
	require.NoError(t, err)

	require.Len(t, chapters, 2)
	assert.Equal(t, "First", chapters[0].Title)
	assert.Equal(t, "Second", chapters[1].Title)
	require.Len(t, chapters[0].Lessons, 2)
	assert.Equal(t, "1.1", chapters[0].Lessons[0].Title)
	assert.Equal(t, "1.2", chapters[0].Lessons[1].Title)

	total, err := catalog.CountLessons(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestIsPublished(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	published := seedCourse(t, db, true, 1)
	draft := seedCourse(t, db, false, 1)

	ok, err := catalog.IsPublished(published.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.IsPublished(draft.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = catalog.IsPublished(999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCourseForLesson(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	course := seedCourse(t, db, true, 2)
	lessons := courseLessons(t, db, course.ID)

	courseID, err := catalog.CourseForLesson(lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, courseID)

	_, err = catalog.CourseForLesson(999)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestGetSkillTags(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	course := seedCourse(t, db, true, 1)
	golang := seedSkill(t, db, "go")
	sql := seedSkill(t, db, "sql")
	tagCourse(t, db, course, golang, sql)

	tags, err := catalog.GetSkillTags(course.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{golang.ID, sql.ID}, tags)

	bare := seedCourse(t, db, true, 1)
	tags, err = catalog.GetSkillTags(bare.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
