package controllers

import (
	"log"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ReviewsController struct {
	Store  storage.Storage
	Cfg    *config.Config
	Logger *log.Logger
}

func NewReviewsController(store storage.Storage, cfg *config.Config, logger *log.Logger) *ReviewsController {
	return &ReviewsController{Store: store, Cfg: cfg, Logger: logger}
}

// AddReviewRequest defines the request body for reviewing a course
type AddReviewRequest struct {
	Rating  int     `json:"rating" example:"5" minimum:"1" maximum:"5"`
	Comment *string `json:"comment" example:"This course was amazing!"`
}

// ListReviews godoc
// @Summary Get course reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} models.Review
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id}/reviews [get]
func (rc *ReviewsController) ListReviews(c *fiber.Ctx) error {
	reviews, err := rc.Store.ListReviewsByCourse(c.Params("id"))
	if err != nil {
		rc.Logger.Printf("list reviews of %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Failed to fetch reviews")
	}
	return c.JSON(reviews)
}

// AddReview godoc
// @Summary Review a course
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param input body AddReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/reviews [post]
func (rc *ReviewsController) AddReview(c *fiber.Ctx) error {
	var input AddReviewRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := rc.Store.GetCourse(c.Params("id"))
	if err != nil {
		rc.Logger.Printf("add review: get course %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Could not create review")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	review := models.Review{
		UserID:   middleware.CurrentUserID(c),
		CourseID: course.ID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}
	if err := review.Validate(); err != nil {
		return invalidInput(c, err)
	}

	created, err := rc.Store.CreateReview(review)
	if err != nil {
		rc.Logger.Printf("add review to %s: %v", course.ID, err)
		return utils.InternalServerError(c, "Could not create review")
	}

	return utils.Created(c, created)
}
