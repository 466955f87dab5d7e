package service

import (
	"testing"

	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressFixture() (*ProgressService, []model.Lesson) {
	lessonRepo := repository.NewLessonRepository()
	for i := 1; i <= 3; i++ {
		lessonRepo.Create(&model.Lesson{CourseID: 1, Title: "lesson", OrderIndex: i})
	}
	lessonRepo.Create(&model.Lesson{CourseID: 2, Title: "other", OrderIndex: 1})

	return NewProgressService(repository.NewProgressRepository(), lessonRepo), lessonRepo.FindByCourse(1)
}

func TestCourseProgressCounts(t *testing.T) {
	svc, lessons := newProgressFixture()

	progress := svc.CourseProgress(1, 1)
	assert.Equal(t, model.CourseProgress{Completed: 0, Total: 3}, progress)

	_, err := svc.SetLessonProgress(1, lessons[0].ID, true)
	require.NoError(t, err)

	progress = svc.CourseProgress(1, 1)
	assert.Equal(t, model.CourseProgress{Completed: 1, Total: 3}, progress)

	// Progress on another course's lesson must not bleed in.
	other := svc.LessonRepo.FindByCourse(2)
	_, err = svc.SetLessonProgress(1, other[0].ID, true)
	require.NoError(t, err)
	progress = svc.CourseProgress(1, 1)
	assert.Equal(t, model.CourseProgress{Completed: 1, Total: 3}, progress)
}

func TestCourseProgressIgnoresUncompleted(t *testing.T) {
	svc, lessons := newProgressFixture()

	_, err := svc.SetLessonProgress(1, lessons[0].ID, true)
	require.NoError(t, err)
	_, err = svc.SetLessonProgress(1, lessons[1].ID, false)
	require.NoError(t, err)

	assert.Equal(t, model.CourseProgress{Completed: 1, Total: 3}, svc.CourseProgress(1, 1))

	// Unsetting the completed lesson drops the count back to zero.
	_, err = svc.SetLessonProgress(1, lessons[0].ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.CourseProgress{Completed: 0, Total: 3}, svc.CourseProgress(1, 1))
}

func TestCourseProgressUnknownCourse(t *testing.T) {
	svc, _ := newProgressFixture()
	assert.Equal(t, model.CourseProgress{Completed: 0, Total: 0}, svc.CourseProgress(1, 42))
}

func TestSetLessonProgressUnknownLesson(t *testing.T) {
	svc, _ := newProgressFixture()
	_, err := svc.SetLessonProgress(1, 99, true)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}
