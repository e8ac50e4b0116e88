package controllers

import (
	"errors"
	"log"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store  storage.Storage
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProgressController(store storage.Storage, cfg *config.Config, logger *log.Logger) *ProgressController {
	return &ProgressController{Store: store, Cfg: cfg, Logger: logger}
}

// ListEnrollments returns the caller's enrollments.
func (pc *ProgressController) ListEnrollments(c *fiber.Ctx) error {
	enrollments, err := pc.Store.ListEnrollmentsByUser(middleware.CurrentUserID(c))
	if err != nil {
		pc.Logger.Printf("list enrollments: %v", err)
		return utils.InternalServerError(c, "Failed to fetch enrollments")
	}
	return c.JSON(enrollments)
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags progress
// @Produce json
// @Param id path string true "Course ID"
// @Success 201 {object} models.Enrollment
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/enroll [post]
func (pc *ProgressController) Enroll(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	course, err := pc.Store.GetCourse(c.Params("id"))
	if err != nil {
		pc.Logger.Printf("enroll: get course %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Could not create enrollment")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	enrollment, err := pc.Store.CreateEnrollment(models.Enrollment{UserID: userID, CourseID: course.ID})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyEnrolled) {
			return utils.Conflict(c, "Already enrolled")
		}
		pc.Logger.Printf("enroll %s in %s: %v", userID, course.ID, err)
		return utils.InternalServerError(c, "Could not create enrollment")
	}

	return utils.Created(c, enrollment)
}

func (pc *ProgressController) GetEnrollment(c *fiber.Ctx) error {
	enrollment, err := pc.Store.GetEnrollment(middleware.CurrentUserID(c), c.Params("id"))
	if err != nil {
		pc.Logger.Printf("get enrollment for %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Failed to fetch enrollment")
	}
	if enrollment == nil {
		return utils.NotFound(c, "Enrollment not found")
	}
	return c.JSON(enrollment)
}

// UpdateProgressRequest is the progress update body
type UpdateProgressRequest struct {
	Progress *float64 `json:"progress" example:"42.5"`
}

// UpdateProgress godoc
// @Summary Update course progress
// @Description Overwrites the caller's progress for the course. A missing enrollment is reported as 500.
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param input body UpdateProgressRequest true "Progress, 0-100"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress [put]
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	var input UpdateProgressRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Progress == nil {
		return utils.ValidationError(c, map[string]string{"progress": "is required"})
	}

	// ErrEnrollmentNotFound deliberately maps to 500 like any other storage failure
	enrollment, err := pc.Store.UpdateEnrollmentProgress(middleware.CurrentUserID(c), c.Params("id"), *input.Progress)
	if err != nil {
		pc.Logger.Printf("update progress for %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Failed to update progress")
	}

	return c.JSON(enrollment)
}
