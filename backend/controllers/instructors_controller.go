package controllers

import (
	"log"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type InstructorsController struct {
	Store  storage.Storage
	Cfg    *config.Config
	Logger *log.Logger
}

func NewInstructorsController(store storage.Storage, cfg *config.Config, logger *log.Logger) *InstructorsController {
	return &InstructorsController{Store: store, Cfg: cfg, Logger: logger}
}

func (ic *InstructorsController) ListInstructors(c *fiber.Ctx) error {
	instructors, err := ic.Store.ListInstructors()
	if err != nil {
		ic.Logger.Printf("list instructors: %v", err)
		return utils.InternalServerError(c, "Failed to fetch instructors")
	}
	return c.JSON(instructors)
}

func (ic *InstructorsController) GetInstructor(c *fiber.Ctx) error {
	instructor, err := ic.Store.GetInstructor(c.Params("id"))
	if err != nil {
		ic.Logger.Printf("get instructor %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Failed to fetch instructor")
	}
	if instructor == nil {
		return utils.NotFound(c, "Instructor not found")
	}
	return c.JSON(instructor)
}

func (ic *InstructorsController) CreateInstructor(c *fiber.Ctx) error {
	var instructor models.Instructor
	if err := c.BodyParser(&instructor); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := instructor.Validate(); err != nil {
		return invalidInput(c, err)
	}

	created, err := ic.Store.CreateInstructor(instructor)
	if err != nil {
		ic.Logger.Printf("create instructor: %v", err)
		return utils.InternalServerError(c, "Could not create instructor")
	}

	return utils.Created(c, created)
}
