package controllers

import (
	"log"

	"coursehub/backend/config"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store  storage.Storage
	Cfg    *config.Config
	Logger *log.Logger
}

func NewUserController(store storage.Storage, cfg *config.Config, logger *log.Logger) *UserController {
	return &UserController{Store: store, Cfg: cfg, Logger: logger}
}

// GetUser returns the public profile; the credential is never serialized.
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	user, err := uc.Store.GetUser(c.Params("id"))
	if err != nil {
		uc.Logger.Printf("get user %s: %v", c.Params("id"), err)
		return utils.InternalServerError(c, "Failed to fetch user")
	}
	if user == nil {
		return utils.NotFound(c, "User not found")
	}
	return c.JSON(user)
}
