package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course_platform_backend/internal/config"
	"course_platform_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		JWT: config.JWTConfig{
			Secret:     "integration-test-secret",
			ExpireTime: time.Hour,
		},
		Seed: config.SeedConfig{Enabled: true},
	}
	return NewApp(cfg)
}

type jsonBody = map[string]interface{}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *App, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	app.Router.ServeHTTP(recorder, req)

	var env envelope
	if len(recorder.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	}
	return recorder, env
}

func registerUser(t *testing.T, app *App, email string) (string, model.PublicUser) {
	t.Helper()

	recorder, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", jsonBody{
		"email":     email,
		"password":  "correct-horse-battery",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var data struct {
		Token string           `json:"token"`
		User  model.PublicUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token, data.User
}

func TestLearnerJourney(t *testing.T) {
	app := newTestApp()
	token, user := registerUser(t, app, "learner@example.com")

	// Browse the catalog anonymously.
	recorder, env := doJSON(t, app, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var courses []model.Course
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 3)
	courseID := courses[0].ID

	// Enroll.
	recorder, _ = doJSON(t, app, http.MethodPost, "/api/enrollments", token, jsonBody{
		"userId": user.ID, "courseId": courseID,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Enrolling twice is rejected.
	recorder, env = doJSON(t, app, http.MethodPost, "/api/enrollments", token, jsonBody{
		"userId": user.ID, "courseId": courseID,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Already enrolled in this course", env.Message)

	recorder, env = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/enrollments/check/%d/%d", user.ID, courseID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var check struct {
		IsEnrolled bool `json:"isEnrolled"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &check))
	assert.True(t, check.IsEnrolled)

	// No progress yet.
	recorder, env = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/progress/course/%d/%d", user.ID, courseID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var progress model.CourseProgress
	require.NoError(t, json.Unmarshal(env.Data, &progress))
	assert.Equal(t, model.CourseProgress{Completed: 0, Total: 3}, progress)

	// Complete the first lesson.
	recorder, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d/lessons", courseID), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var lessons []model.Lesson
	require.NoError(t, json.Unmarshal(env.Data, &lessons))
	require.Len(t, lessons, 3)

	recorder, _ = doJSON(t, app, http.MethodPost, "/api/progress/lesson", token, jsonBody{
		"userId": user.ID, "lessonId": lessons[0].ID, "completed": true,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder, env = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/progress/course/%d/%d", user.ID, courseID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(env.Data, &progress))
	assert.Equal(t, model.CourseProgress{Completed: 1, Total: 3}, progress)

	// Take the lesson quiz, all answers correct.
	recorder, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/lessons/%d/quiz", lessons[0].ID), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var quiz model.Quiz
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	require.Len(t, quiz.Questions, 2)

	answers := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answers[i] = q.CorrectAnswer
	}
	recorder, env = doJSON(t, app, http.MethodPost, "/api/quiz/submit", token, jsonBody{
		"userId": user.ID, "quizId": quiz.ID, "answers": answers,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var result model.QuizResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 100, result.Score)

	// Mark the course finished and collect a certificate.
	recorder, env = doJSON(t, app, http.MethodPost, "/api/enrollments/complete", token, jsonBody{
		"userId": user.ID, "courseId": courseID,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var enrollment model.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.NotNil(t, enrollment.CompletedAt)

	recorder, _ = doJSON(t, app, http.MethodPost, "/api/certificates", token, jsonBody{
		"userId": user.ID, "courseId": courseID,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder, env = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/certificates", user.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var certificates []model.CertificateWithCourse
	require.NoError(t, json.Unmarshal(env.Data, &certificates))
	require.Len(t, certificates, 1)
	assert.Equal(t, courses[0].Title, certificates[0].Course.Title)
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp()

	recorder, _ := doJSON(t, app, http.MethodGet, "/api/users/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder, _ = doJSON(t, app, http.MethodGet, "/api/users/1", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestOwnerChecks(t *testing.T) {
	app := newTestApp()
	_, owner := registerUser(t, app, "owner@example.com")
	otherToken, _ := registerUser(t, app, "other@example.com")

	recorder, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", owner.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder, _ = doJSON(t, app, http.MethodPost, "/api/enrollments", otherToken, jsonBody{
		"userId": owner.ID, "courseId": 1,
	})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestPasswordNeverSerialized(t *testing.T) {
	app := newTestApp()
	token, user := registerUser(t, app, "learner@example.com")

	recorder, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "correct-horse-battery")
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp()
	registerUser(t, app, "learner@example.com")

	recorder, env := doJSON(t, app, http.MethodPost, "/api/auth/login", "", jsonBody{
		"email": "learner@example.com", "password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)

	recorder, env = doJSON(t, app, http.MethodPost, "/api/auth/login", "", jsonBody{
		"email": "learner@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	app := newTestApp()
	registerUser(t, app, "learner@example.com")

	recorder, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", jsonBody{
		"email":     "learner@example.com",
		"password":  "another-password",
		"firstName": "Grace",
		"lastName":  "Hopper",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "User already exists", env.Message)
}

func TestUpdateProfile(t *testing.T) {
	app := newTestApp()
	token, user := registerUser(t, app, "learner@example.com")

	recorder, env := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), token, jsonBody{
		"bio": "learning Go", "learningGoals": []string{"go", "sql"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var updated model.PublicUser
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "learning Go", updated.Bio)
	assert.Equal(t, []string{"go", "sql"}, updated.LearningGoals)
	assert.Equal(t, "learner@example.com", updated.Email)
	assert.Equal(t, "Ada", updated.FirstName)
}

func TestNotFoundResponses(t *testing.T) {
	app := newTestApp()

	recorder, _ := doJSON(t, app, http.MethodGet, "/api/courses/999", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder, _ = doJSON(t, app, http.MethodGet, "/api/courses/abc", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder, _ = doJSON(t, app, http.MethodGet, "/api/lessons/999/quiz", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestLessonsForUnknownCourseIsEmptyList(t *testing.T) {
	app := newTestApp()

	recorder, env := doJSON(t, app, http.MethodGet, "/api/courses/999/lessons", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var lessons []model.Lesson
	require.NoError(t, json.Unmarshal(env.Data, &lessons))
	assert.Empty(t, lessons)
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp()

	recorder, env := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "success", env.Message)
}
