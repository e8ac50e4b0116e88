package storage

import (
	"errors"
	"fmt"
	"time"

	"coursehub/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage keeps the catalog in a SQL database. It follows the same
// contract as MemStorage, including absent joins for dangling references.
type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

// AutoMigrate creates or updates the tables for every entity kind.
func (s *GormStorage) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.Instructor{},
		&models.Course{},
		&models.Section{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.Review{},
	)
}

// Seed inserts the fixture catalog. Records that already exist are left alone.
func (s *GormStorage) Seed() error {
	f := Fixtures(time.Now())
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range f.Instructors {
			if err := tx.FirstOrCreate(&f.Instructors[i], models.Instructor{ID: f.Instructors[i].ID}).Error; err != nil {
				return fmt.Errorf("seed instructor %s: %w", f.Instructors[i].ID, err)
			}
		}
		for i := range f.Courses {
			if err := tx.FirstOrCreate(&f.Courses[i], models.Course{ID: f.Courses[i].ID}).Error; err != nil {
				return fmt.Errorf("seed course %s: %w", f.Courses[i].ID, err)
			}
		}
		for i := range f.Sections {
			if err := tx.FirstOrCreate(&f.Sections[i], models.Section{ID: f.Sections[i].ID}).Error; err != nil {
				return fmt.Errorf("seed section %s: %w", f.Sections[i].ID, err)
			}
		}
		for i := range f.Lessons {
			if err := tx.FirstOrCreate(&f.Lessons[i], models.Lesson{ID: f.Lessons[i].ID}).Error; err != nil {
				return fmt.Errorf("seed lesson %s: %w", f.Lessons[i].ID, err)
			}
		}
		return nil
	})
}

func (s *GormStorage) GetUser(id string) (*models.User, error) {
	var user models.User
	return first(s.DB.Where("id = ?", id), &user)
}

func (s *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	return first(s.DB.Where("username = ?", username), &user)
}

func (s *GormStorage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	return first(s.DB.Where("email = ?", email), &user)
}

func (s *GormStorage) CreateUser(user models.User) (models.User, error) {
	user.ID = newID()
	user.CreatedAt = time.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", user.Username, user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUser
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicateUser
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *GormStorage) ListCourses() ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.DB.Order("created_at, id").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *GormStorage) ListCoursesByCategory(category string) ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.DB.Where("category = ?", category).Order("created_at, id").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses in %q: %w", category, err)
	}
	return courses, nil
}

func (s *GormStorage) GetCourse(id string) (*models.Course, error) {
	var course models.Course
	return first(s.DB.Where("id = ?", id), &course)
}

func (s *GormStorage) CreateCourse(course models.Course) (models.Course, error) {
	course.ID = newID()
	course.CreatedAt = time.Now()
	if err := s.DB.Create(&course).Error; err != nil {
		return models.Course{}, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

func (s *GormStorage) GetInstructor(id string) (*models.Instructor, error) {
	var instructor models.Instructor
	return first(s.DB.Where("id = ?", id), &instructor)
}

func (s *GormStorage) ListInstructors() ([]models.Instructor, error) {
	instructors := []models.Instructor{}
	if err := s.DB.Order("id").Find(&instructors).Error; err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

func (s *GormStorage) CreateInstructor(instructor models.Instructor) (models.Instructor, error) {
	instructor.ID = newID()
	if err := s.DB.Create(&instructor).Error; err != nil {
		return models.Instructor{}, fmt.Errorf("create instructor: %w", err)
	}
	return instructor, nil
}

func (s *GormStorage) ListLessonsByCourse(courseID string) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	if err := s.DB.Where("course_id = ?", courseID).Order("sort_order, id").Find(&lessons).Error; err != nil {
		return nil, fmt.Errorf("list lessons of %s: %w", courseID, err)
	}
	return lessons, nil
}

func (s *GormStorage) GetLesson(id string) (*models.Lesson, error) {
	var lesson models.Lesson
	return first(s.DB.Where("id = ?", id), &lesson)
}

func (s *GormStorage) CreateLesson(lesson models.Lesson) (models.Lesson, error) {
	lesson.ID = newID()
	if err := s.DB.Create(&lesson).Error; err != nil {
		return models.Lesson{}, fmt.Errorf("create lesson: %w", err)
	}
	return lesson, nil
}

func (s *GormStorage) ListSectionsByCourse(courseID string) ([]models.Section, error) {
	sections := []models.Section{}
	if err := s.DB.Where("course_id = ?", courseID).Order("sort_order, id").Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("list sections of %s: %w", courseID, err)
	}
	return sections, nil
}

func (s *GormStorage) CreateSection(section models.Section) (models.Section, error) {
	section.ID = newID()
	if err := s.DB.Create(&section).Error; err != nil {
		return models.Section{}, fmt.Errorf("create section: %w", err)
	}
	return section, nil
}

func (s *GormStorage) ListEnrollmentsByUser(userID string) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	if err := s.DB.Where("user_id = ?", userID).Order("enrolled_at").Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("list enrollments of %s: %w", userID, err)
	}
	return enrollments, nil
}

func (s *GormStorage) GetEnrollment(userID, courseID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	return first(s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).Order("enrolled_at"), &enrollment)
}

// CreateEnrollment: idx_enrollment_user_course catches inserts that race past
// the count.
func (s *GormStorage) CreateEnrollment(enrollment models.Enrollment) (models.Enrollment, error) {
	enrollment.ID = newID()
	enrollment.EnrolledAt = time.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyEnrolled
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyEnrolled) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
		return models.Enrollment{}, fmt.Errorf("create enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *GormStorage) UpdateEnrollmentProgress(userID, courseID string, progress float64) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Order("enrolled_at").
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEnrollmentNotFound
			}
			return err
		}
		enrollment.Progress = progress
		return tx.Save(&enrollment).Error
	})
	if err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			return models.Enrollment{}, err
		}
		return models.Enrollment{}, fmt.Errorf("update progress: %w", err)
	}
	return enrollment, nil
}

func (s *GormStorage) ListReviewsByCourse(courseID string) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.DB.Where("course_id = ?", courseID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews of %s: %w", courseID, err)
	}
	return reviews, nil
}

func (s *GormStorage) CreateReview(review models.Review) (models.Review, error) {
	review.ID = newID()
	review.CreatedAt = time.Now()
	if err := s.DB.Create(&review).Error; err != nil {
		return models.Review{}, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// first loads one record; a missing row yields nil, nil.
func first[T any](query *gorm.DB, dest *T) (*T, error) {
	if err := query.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}
