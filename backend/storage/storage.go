package storage

import (
	"errors"

	"coursehub/backend/models"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in course")
)

// Storage is the query layer used by the HTTP controllers. Lookups return a
// nil pointer and a nil error when the record does not exist.
type Storage interface {
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user models.User) (models.User, error)

	ListCourses() ([]models.Course, error)
	ListCoursesByCategory(category string) ([]models.Course, error)
	GetCourse(id string) (*models.Course, error)
	CreateCourse(course models.Course) (models.Course, error)

	GetInstructor(id string) (*models.Instructor, error)
	ListInstructors() ([]models.Instructor, error)
	CreateInstructor(instructor models.Instructor) (models.Instructor, error)

	ListLessonsByCourse(courseID string) ([]models.Lesson, error)
	GetLesson(id string) (*models.Lesson, error)
	CreateLesson(lesson models.Lesson) (models.Lesson, error)

	ListSectionsByCourse(courseID string) ([]models.Section, error)
	CreateSection(section models.Section) (models.Section, error)

	ListEnrollmentsByUser(userID string) ([]models.Enrollment, error)
	GetEnrollment(userID, courseID string) (*models.Enrollment, error)
	// CreateEnrollment fails with ErrAlreadyEnrolled when the (user, course)
	// pair is taken.
	CreateEnrollment(enrollment models.Enrollment) (models.Enrollment, error)
	UpdateEnrollmentProgress(userID, courseID string, progress float64) (models.Enrollment, error)

	ListReviewsByCourse(courseID string) ([]models.Review, error)
	CreateReview(review models.Review) (models.Review, error)
}

func newID() string {
	return uuid.New().String()
}

var (
	_ Storage = (*MemStorage)(nil)
	_ Storage = (*GormStorage)(nil)
)
