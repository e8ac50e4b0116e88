package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseValidate(t *testing.T) {
	course := Course{
		Title:        "Go for Backend Engineers",
		Description:  "Services, storage and testing.",
		Category:     "Programming",
		Level:        "Intermediate",
		Duration:     "12 hours",
		InstructorID: "inst-1",
		Price:        49,
	}
	assert.NoError(t, course.Validate())

	course.Title = "  "
	course.Price = -1
	err := course.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "is required", verrs["title"])
	assert.Equal(t, "must not be negative", verrs["price"])
	assert.Equal(t, "invalid input: price: must not be negative; title: is required", err.Error())
}

func TestReviewValidateRating(t *testing.T) {
	review := Review{UserID: "u1", CourseID: "course-1", Rating: 5}
	assert.NoError(t, review.Validate())

	review.Rating = 0
	assert.Error(t, review.Validate())

	review.Rating = 6
	assert.Error(t, review.Validate())
}

func TestUserValidateEmail(t *testing.T) {
	user := User{Username: "ada", Password: "secret", Email: "ada.example.com"}
	err := user.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	data, err := json.Marshal(User{ID: "u1", Username: "ada", Password: "hash", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "password")
}

func TestCourseWithInstructorOmitsDanglingInstructor(t *testing.T) {
	entry := CourseWithInstructor{Course: Course{ID: "course-x", InstructorID: "missing"}}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "course-x", decoded["id"])
	assert.Equal(t, "missing", decoded["instructorId"])
	_, present := decoded["instructor"]
	assert.False(t, present)
}
