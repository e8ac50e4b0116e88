package storage

import (
	"sort"
	"sync"
	"time"

	"coursehub/backend/models"
)

// MemStorage keeps every entity in process memory. Nothing survives a restart
// except the fixture data loaded by NewMemStorage.
type MemStorage struct {
	users       *collection[models.User]
	instructors *collection[models.Instructor]
	courses     *collection[models.Course]
	lessons     *collection[models.Lesson]
	sections    *collection[models.Section]
	enrollments *collection[models.Enrollment]
	reviews     *collection[models.Review]

	// serialize the uniqueness check and insert in CreateUser / CreateEnrollment
	userMu   sync.Mutex
	enrollMu sync.Mutex

	now func() time.Time
}

// NewMemStorage returns a store loaded with the catalog fixtures.
func NewMemStorage() *MemStorage {
	s := NewEmptyMemStorage()
	s.seed(Fixtures(s.now()))
	return s
}

// NewEmptyMemStorage returns a store with no records at all.
func NewEmptyMemStorage() *MemStorage {
	return &MemStorage{
		users:       newCollection[models.User](),
		instructors: newCollection[models.Instructor](),
		courses:     newCollection[models.Course](),
		lessons:     newCollection[models.Lesson](),
		sections:    newCollection[models.Section](),
		enrollments: newCollection[models.Enrollment](),
		reviews:     newCollection[models.Review](),
		now:         time.Now,
	}
}

func (s *MemStorage) seed(f FixtureSet) {
	for _, i := range f.Instructors {
		s.instructors.put(i.ID, i)
	}
	for _, c := range f.Courses {
		s.courses.put(c.ID, c)
	}
	for _, sec := range f.Sections {
		s.sections.put(sec.ID, sec)
	}
	for _, l := range f.Lessons {
		s.lessons.put(l.ID, l)
	}
}

func (s *MemStorage) GetUser(id string) (*models.User, error) {
	return found(s.users.get(id))
}

func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	return found(s.users.find(func(u models.User) bool { return u.Username == username }))
}

func (s *MemStorage) GetUserByEmail(email string) (*models.User, error) {
	return found(s.users.find(func(u models.User) bool { return u.Email == email }))
}

func (s *MemStorage) CreateUser(user models.User) (models.User, error) {
	s.userMu.Lock()
	defer s.userMu.Unlock()

	if _, taken := s.users.find(func(u models.User) bool {
		return u.Username == user.Username || u.Email == user.Email
	}); taken {
		return models.User{}, ErrDuplicateUser
	}

	user.ID = newID()
	user.CreatedAt = s.now()
	s.users.put(user.ID, user)
	return user, nil
}

func (s *MemStorage) ListCourses() ([]models.Course, error) {
	return s.courses.list(), nil
}

func (s *MemStorage) ListCoursesByCategory(category string) ([]models.Course, error) {
	return s.courses.filter(func(c models.Course) bool { return c.Category == category }), nil
}

func (s *MemStorage) GetCourse(id string) (*models.Course, error) {
	return found(s.courses.get(id))
}

func (s *MemStorage) CreateCourse(course models.Course) (models.Course, error) {
	course.ID = newID()
	course.CreatedAt = s.now()
	s.courses.put(course.ID, course)
	return course, nil
}

func (s *MemStorage) GetInstructor(id string) (*models.Instructor, error) {
	return found(s.instructors.get(id))
}

func (s *MemStorage) ListInstructors() ([]models.Instructor, error) {
	return s.instructors.list(), nil
}

func (s *MemStorage) CreateInstructor(instructor models.Instructor) (models.Instructor, error) {
	instructor.ID = newID()
	s.instructors.put(instructor.ID, instructor)
	return instructor, nil
}

func (s *MemStorage) ListLessonsByCourse(courseID string) ([]models.Lesson, error) {
	lessons := s.lessons.filter(func(l models.Lesson) bool { return l.CourseID == courseID })
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	return lessons, nil
}

func (s *MemStorage) GetLesson(id string) (*models.Lesson, error) {
	return found(s.lessons.get(id))
}

func (s *MemStorage) CreateLesson(lesson models.Lesson) (models.Lesson, error) {
	lesson.ID = newID()
	s.lessons.put(lesson.ID, lesson)
	return lesson, nil
}

func (s *MemStorage) ListSectionsByCourse(courseID string) ([]models.Section, error) {
	sections := s.sections.filter(func(sec models.Section) bool { return sec.CourseID == courseID })
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })
	return sections, nil
}

func (s *MemStorage) CreateSection(section models.Section) (models.Section, error) {
	section.ID = newID()
	s.sections.put(section.ID, section)
	return section, nil
}

func (s *MemStorage) ListEnrollmentsByUser(userID string) ([]models.Enrollment, error) {
	return s.enrollments.filter(func(e models.Enrollment) bool { return e.UserID == userID }), nil
}

func (s *MemStorage) GetEnrollment(userID, courseID string) (*models.Enrollment, error) {
	return found(s.enrollments.find(enrollmentOf(userID, courseID)))
}

func (s *MemStorage) CreateEnrollment(enrollment models.Enrollment) (models.Enrollment, error) {
	s.enrollMu.Lock()
	defer s.enrollMu.Unlock()

	if _, taken := s.enrollments.find(enrollmentOf(enrollment.UserID, enrollment.CourseID)); taken {
		return models.Enrollment{}, ErrAlreadyEnrolled
	}

	enrollment.ID = newID()
	enrollment.EnrolledAt = s.now()
	s.enrollments.put(enrollment.ID, enrollment)
	return enrollment, nil
}

// UpdateEnrollmentProgress overwrites the progress of the first enrollment for
// the pair. Concurrent callers race and the last write wins.
func (s *MemStorage) UpdateEnrollmentProgress(userID, courseID string, progress float64) (models.Enrollment, error) {
	updated, ok := s.enrollments.update(enrollmentOf(userID, courseID), func(e *models.Enrollment) {
		e.Progress = progress
	})
	if !ok {
		return models.Enrollment{}, ErrEnrollmentNotFound
	}
	return updated, nil
}

func (s *MemStorage) ListReviewsByCourse(courseID string) ([]models.Review, error) {
	return s.reviews.filter(func(r models.Review) bool { return r.CourseID == courseID }), nil
}

func (s *MemStorage) CreateReview(review models.Review) (models.Review, error) {
	review.ID = newID()
	review.CreatedAt = s.now()
	s.reviews.put(review.ID, review)
	return review, nil
}

func enrollmentOf(userID, courseID string) func(models.Enrollment) bool {
	return func(e models.Enrollment) bool {
		return e.UserID == userID && e.CourseID == courseID
	}
}

func found[T any](item T, ok bool) (*T, error) {
	if !ok {
		return nil, nil
	}
	return &item, nil
}
