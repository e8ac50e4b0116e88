package controllers

import (
	"errors"
	"log"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Store  storage.Storage
	Cfg    *config.Config
	Logger *log.Logger
}

func NewAuthController(store storage.Storage, cfg *config.Config, logger *log.Logger) *AuthController {
	return &AuthController{Store: store, Cfg: cfg, Logger: logger}
}

// RegisterRequest is the registration body
type RegisterRequest struct {
	Username string `json:"username" example:"ada"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and returns a bearer token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
	if err := user.Validate(); err != nil {
		return invalidInput(c, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		ac.Logger.Printf("register: hash password: %v", err)
		return utils.InternalServerError(c, "Could not create user")
	}
	user.Password = string(hashedPassword)

	created, err := ac.Store.CreateUser(user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUser) {
			return utils.Conflict(c, "Username or email already taken")
		}
		ac.Logger.Printf("register: %v", err)
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(created.ID, ac.Cfg)
	if err != nil {
		ac.Logger.Printf("register: token: %v", err)
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Created(c, fiber.Map{
		"token": token,
		"user":  created,
	})
}
