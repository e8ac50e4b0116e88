package controllers

import (
	"fmt"
	"log"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// upper bound on concurrent instructor lookups for one catalog listing
const instructorFetchLimit = 8

type CoursesController struct {
	Store  storage.Storage
	Cfg    *config.Config
	Logger *log.Logger
}

func NewCoursesController(store storage.Storage, cfg *config.Config, logger *log.Logger) *CoursesController {
	return &CoursesController{Store: store, Cfg: cfg, Logger: logger}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns every course with its instructor embedded, optionally filtered by exact category
// @Tags courses
// @Produce json
// @Param category query string false "Exact, case-sensitive category"
// @Success 200 {array} models.CourseWithInstructor
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	var (
		courses []models.Course
		err     error
	)
	// a repeated category parameter filters on its first value
	if category := c.Query("category"); category != "" {
		courses, err = cc.Store.ListCoursesByCategory(category)
	} else {
		courses, err = cc.Store.ListCourses()
	}
	if err != nil {
		cc.Logger.Printf("list courses: %v", err)
		return utils.InternalServerError(c, "Failed to fetch courses")
	}

	result, err := cc.attachInstructors(courses)
	if err != nil {
		cc.Logger.Printf("list courses: %v", err)
		return utils.InternalServerError(c, "Failed to fetch courses")
	}

	return c.JSON(result)
}

// attachInstructors looks up each course's instructor independently. A
// dangling instructorId leaves Instructor nil; a storage error fails the lot.
func (cc *CoursesController) attachInstructors(courses []models.Course) ([]models.CourseWithInstructor, error) {
	result := make([]models.CourseWithInstructor, len(courses))

	var g errgroup.Group
	g.SetLimit(instructorFetchLimit)
	for i := range courses {
		g.Go(func() error {
			instructor, err := cc.Store.GetInstructor(courses[i].InstructorID)
			if err != nil {
				return fmt.Errorf("instructor of course %s: %w", courses[i].ID, err)
			}
			result[i] = models.CourseWithInstructor{Course: courses[i], Instructor: instructor}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCourseDetails godoc
// @Summary Get course details
// @Description Returns the course with instructor, ordered sections and reviews
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.CourseDetails
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, err := cc.Store.GetCourse(c.Params("id"))
	if err != nil {
		cc.Logger.Printf("get course %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Failed to fetch course")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	instructor, err := cc.Store.GetInstructor(course.InstructorID)
	if err != nil {
		cc.Logger.Printf("get course %s: instructor: %v", course.ID, err)
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	sections, err := cc.Store.ListSectionsByCourse(course.ID)
	if err != nil {
		cc.Logger.Printf("get course %s: sections: %v", course.ID, err)
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	reviews, err := cc.Store.ListReviewsByCourse(course.ID)
	if err != nil {
		cc.Logger.Printf("get course %s: reviews: %v", course.ID, err)
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	return c.JSON(models.CourseDetails{
		Course:     *course,
		Instructor: instructor,
		Sections:   sections,
		Reviews:    reviews,
	})
}

// GetCourseLessons returns the lessons of a course sorted by order. An unknown
// course yields an empty list.
func (cc *CoursesController) GetCourseLessons(c *fiber.Ctx) error {
	lessons, err := cc.Store.ListLessonsByCourse(c.Params("courseId"))
	if err != nil {
		cc.Logger.Printf("list lessons of %s: %v", c.Params("courseId"), err)
		return utils.InternalServerError(c, "Failed to fetch lessons")
	}
	return c.JSON(lessons)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := course.Validate(); err != nil {
		return invalidInput(c, err)
	}

	// instructorId is not checked; a dangling reference shows up as a missing instructor
	created, err := cc.Store.CreateCourse(course)
	if err != nil {
		cc.Logger.Printf("create course: %v", err)
		return utils.InternalServerError(c, "Could not create course")
	}

	return utils.Created(c, created)
}

func (cc *CoursesController) AddSection(c *fiber.Ctx) error {
	var section models.Section
	if err := c.BodyParser(&section); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Store.GetCourse(c.Params("id"))
	if err != nil {
		cc.Logger.Printf("add section: get course %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Could not create section")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	section.CourseID = course.ID
	if err := section.Validate(); err != nil {
		return invalidInput(c, err)
	}

	created, err := cc.Store.CreateSection(section)
	if err != nil {
		cc.Logger.Printf("add section to %s: %v", course.ID, err)
		return utils.InternalServerError(c, "Could not create section")
	}

	return utils.Created(c, created)
}

func (cc *CoursesController) AddLesson(c *fiber.Ctx) error {
	var lesson models.Lesson
	if err := c.BodyParser(&lesson); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Store.GetCourse(c.Params("id"))
	if err != nil {
		cc.Logger.Printf("add lesson: get course %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Could not create lesson")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	lesson.CourseID = course.ID
	if err := lesson.Validate(); err != nil {
		return invalidInput(c, err)
	}

	created, err := cc.Store.CreateLesson(lesson)
	if err != nil {
		cc.Logger.Printf("add lesson to %s: %v", course.ID, err)
		return utils.InternalServerError(c, "Could not create lesson")
	}

	return utils.Created(c, created)
}
