package controllers

import (
	"errors"

	"coursehub/backend/models"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// invalidInput answers 422 for model validation failures and 400 otherwise.
func invalidInput(c *fiber.Ctx, err error) error {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return utils.ValidationError(c, verrs)
	}
	return utils.BadRequest(c, err.Error())
}
