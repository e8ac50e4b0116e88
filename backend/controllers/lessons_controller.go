package controllers

import (
	"log"

	"coursehub/backend/config"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LessonsController struct {
	Store  storage.Storage
	Cfg    *config.Config
	Logger *log.Logger
}

func NewLessonsController(store storage.Storage, cfg *config.Config, logger *log.Logger) *LessonsController {
	return &LessonsController{Store: store, Cfg: cfg, Logger: logger}
}

// GetLesson godoc
// @Summary Get lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /lessons/{id} [get]
func (lc *LessonsController) GetLesson(c *fiber.Ctx) error {
	lesson, err := lc.Store.GetLesson(c.Params("id"))
	if err != nil {
		lc.Logger.Printf("get lesson %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Failed to fetch lesson")
	}
	if lesson == nil {
		return utils.NotFound(c, "Lesson not found")
	}
	return c.JSON(lesson)
}
