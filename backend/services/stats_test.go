package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningStatsWithoutEnrollments(t *testing.T) {
	db := newTestDB(t)
	service := NewStatsService(db)

	stats, err := service.LearningStats(1)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalCourses)
	assert.Zero(t, stats.CompletedCourses)
	assert.Zero(t, stats.InProgressCourses)
	assert.Zero(t, stats.TotalTimeSpent)
	assert.Zero(t, stats.CompletedLessons)
	assert.Zero(t, stats.AverageProgress)
}

func TestLearningStats(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	progress := NewProgressService(db, catalog)
	enrollments := NewEnrollmentService(db, testLogger())
	service := NewStatsService(db)

	finished := seedCourse(t, db, true, 2)
	finishedLessons := courseLessons(t, db, finished.ID)
	ongoing := seedCourse(t, db, true, 2)
	ongoingLessons := courseLessons(t, db, ongoing.ID)

	_, err := enrollments.Enroll(1, finished.ID)
	require.NoError(t, err)
	_, err = enrollments.Enroll(1, ongoing.ID)
	require.NoError(t, err)

	_, err = progress.RecordLessonCompletion(finishedLessons[0].ID, 1, true, 600)
	require.NoError(t, err)
	_, err = progress.RecordLessonCompletion(finishedLessons[1].ID, 1, true, 300)
	require.NoError(t, err)
	_, err = progress.RecordLessonCompletion(ongoingLessons[0].ID, 1, true, 120)
	require.NoError(t, err)

	// Another learner's activity must not leak into the stats.
	_, err = enrollments.Enroll(2, ongoing.ID)
	require.NoError(t, err)
	_, err = progress.RecordLessonCompletion(ongoingLessons[0].ID, 2, true, 999)
	require.NoError(t, err)

	stats, err := service.LearningStats(1)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 1, stats.CompletedCourses)
	assert.Equal(t, 1, stats.InProgressCourses)
	assert.Equal(t, int64(1020), stats.TotalTimeSpent)
	assert.Equal(t, 3, stats.CompletedLessons)
	assert.InDelta(t, 75.0, stats.AverageProgress, 0.001)
}
