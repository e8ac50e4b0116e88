package controllers_test

import (
	"errors"
	"testing"

	"coursehub/backend/models"
	"coursehub/backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStorage fails every read it overrides and delegates the rest.
type brokenStorage struct {
	storage.Storage
}

var errBackend = errors.New("connection reset by peer")

func (brokenStorage) ListCourses() ([]models.Course, error) { return nil, errBackend }

func (brokenStorage) ListCoursesByCategory(string) ([]models.Course, error) { return nil, errBackend }

func (brokenStorage) GetCourse(string) (*models.Course, error) { return nil, errBackend }

func (brokenStorage) ListLessonsByCourse(string) ([]models.Lesson, error) { return nil, errBackend }

func (brokenStorage) GetInstructor(string) (*models.Instructor, error) { return nil, errBackend }

func (brokenStorage) ListInstructors() ([]models.Instructor, error) { return nil, errBackend }

func (brokenStorage) GetLesson(string) (*models.Lesson, error) {
	panic("lesson table vanished")
}

func TestGetLesson(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "GET", "/api/lessons/lesson-2", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lesson models.Lesson
	decode(t, body, &lesson)
	assert.Equal(t, "Setting Up Your Development Environment", lesson.Title)
	assert.Equal(t, 2, lesson.Order)
	assert.False(t, lesson.IsPreview)
}

func TestGetLessonNotFound(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "GET", "/api/lessons/lesson-404", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Lesson not found"}`, string(body))
}

func TestListInstructors(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "GET", "/api/instructors", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var instructors []models.Instructor
	decode(t, body, &instructors)
	require.Len(t, instructors, 6)
	assert.Equal(t, "inst-1", instructors[0].ID)
	assert.Equal(t, "inst-6", instructors[5].ID)
}

func TestGetInstructorIsStable(t *testing.T) {
	app, _ := setup(t)

	resp, first := do(t, app, "GET", "/api/instructors/inst-3", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	_, second := do(t, app, "GET", "/api/instructors/inst-3", nil, "")
	assert.Equal(t, string(first), string(second))
}

func TestGetInstructorNotFound(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "GET", "/api/instructors/inst-404", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Instructor not found"}`, string(body))
}

func TestAdminCreateInstructorRoundTrip(t *testing.T) {
	app, _ := setup(t)
	bio := "Writes compilers for fun."

	resp, body := do(t, app, "POST", "/api/admin/instructors", models.Instructor{
		Name:          "Grace Hopper",
		Title:         "Rear Admiral",
		Bio:           &bio,
		Rating:        5,
		TotalReviews:  10,
		TotalStudents: 200,
		TotalCourses:  1,
	}, tokenFor(t, "admin-1"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))

	var created models.Instructor
	decode(t, body, &created)
	require.NotEmpty(t, created.ID)

	resp, body = do(t, app, "GET", "/api/instructors/"+created.ID, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched models.Instructor
	decode(t, body, &fetched)
	assert.Equal(t, created, fetched)
}

func TestStorageFailuresAnswer500(t *testing.T) {
	app := newApp(brokenStorage{Storage: storage.NewMemStorage()})

	cases := []struct {
		path    string
		message string
	}{
		{"/api/courses", "Failed to fetch courses"},
		{"/api/courses?category=Design", "Failed to fetch courses"},
		{"/api/courses/course-1", "Failed to fetch course"},
		{"/api/courses/course-1/lessons", "Failed to fetch lessons"},
		{"/api/instructors", "Failed to fetch instructors"},
		{"/api/instructors/inst-1", "Failed to fetch instructor"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, body := do(t, app, "GET", tc.path, nil, "")
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			assert.JSONEq(t, `{"message":"`+tc.message+`"}`, string(body))
			assert.NotContains(t, string(body), errBackend.Error())
		})
	}
}

func TestPanicIsRecovered(t *testing.T) {
	app := newApp(brokenStorage{Storage: storage.NewMemStorage()})

	resp, body := do(t, app, "GET", "/api/lessons/lesson-1", nil, "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Internal server error"}`, string(body))
}

func TestHealthz(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "GET", "/healthz", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestUnknownRoute(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "GET", "/api/nope", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errBody map[string]interface{}
	decode(t, body, &errBody)
	assert.Contains(t, errBody, "message")
}
