package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"coursehub/backend/models"
)

const (
	coursesPath     = "/api/courses"
	lessonsPath     = "/api/lessons"
	instructorsPath = "/api/instructors"
)

func fetchJSON[T any](ctx context.Context, c *Client, key string) (T, error) {
	var out T
	data, err := c.Fetch(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

// CoursesKey is the cache key used by Courses.
func CoursesKey(category string) string {
	if category == "" {
		return coursesPath
	}
	return coursesPath + "?" + url.Values{"category": {category}}.Encode()
}

// Courses lists the catalog, optionally narrowed to one exact category.
func (c *Client) Courses(ctx context.Context, category string) ([]models.CourseWithInstructor, error) {
	return fetchJSON[[]models.CourseWithInstructor](ctx, c, CoursesKey(category))
}

func (c *Client) Course(ctx context.Context, id string) (models.CourseDetails, error) {
	return fetchJSON[models.CourseDetails](ctx, c, Key(coursesPath, id))
}

func (c *Client) CourseLessons(ctx context.Context, courseID string) ([]models.Lesson, error) {
	return fetchJSON[[]models.Lesson](ctx, c, Key(coursesPath, courseID, "lessons"))
}

func (c *Client) Lesson(ctx context.Context, id string) (models.Lesson, error) {
	return fetchJSON[models.Lesson](ctx, c, Key(lessonsPath, id))
}

func (c *Client) Instructors(ctx context.Context) ([]models.Instructor, error) {
	return fetchJSON[[]models.Instructor](ctx, c, instructorsPath)
}

func (c *Client) Instructor(ctx context.Context, id string) (models.Instructor, error) {
	return fetchJSON[models.Instructor](ctx, c, Key(instructorsPath, id))
}
