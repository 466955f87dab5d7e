package service

import (
	"testing"

	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentFixture() (*EnrollmentService, *model.Course) {
	courseRepo := repository.NewCourseRepository()
	course := courseRepo.Create(&model.Course{Title: "Go from Scratch", Instructor: "R. Pike"})
	return NewEnrollmentService(repository.NewEnrollmentRepository(), courseRepo), course
}

func TestEnroll(t *testing.T) {
	svc, course := newEnrollmentFixture()

	enrollment, err := svc.Enroll(1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.True(t, svc.IsEnrolled(1, course.ID))
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, _ := newEnrollmentFixture()
	_, err := svc.Enroll(1, 99)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestEnrollDuplicate(t *testing.T) {
	svc, course := newEnrollmentFixture()

	_, err := svc.Enroll(1, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(1, course.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
}

func TestListForUserJoinsCourse(t *testing.T) {
	svc, course := newEnrollmentFixture()

	_, err := svc.Enroll(1, course.ID)
	require.NoError(t, err)

	list := svc.ListForUser(1)
	require.Len(t, list, 1)
	assert.Equal(t, "Go from Scratch", list[0].Course.Title)
	assert.Equal(t, course.ID, list[0].CourseID)

	assert.Empty(t, svc.ListForUser(2))
}

func TestCompleteEnrollment(t *testing.T) {
	svc, course := newEnrollmentFixture()

	_, err := svc.Enroll(1, course.ID)
	require.NoError(t, err)

	completed, err := svc.Complete(1, course.ID)
	require.NoError(t, err)
	assert.NotNil(t, completed.CompletedAt)

	_, err = svc.Complete(2, course.ID)
	assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
}
