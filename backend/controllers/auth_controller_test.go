package controllers_test

import (
	"testing"

	"coursehub/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	app, store := setup(t)

	resp, body := do(t, app, "POST", "/api/auth/register", map[string]string{
		"username": "ada",
		"email":    "ada@example.com",
		"password": "analytical",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))

	var out struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	decode(t, body, &out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ada", out.User["username"])
	assert.NotContains(t, out.User, "password")

	stored, err := store.GetUserByUsername("ada")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "analytical", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("analytical")))

	resp, body = do(t, app, "GET", "/api/users/"+stored.ID, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var user models.User
	decode(t, body, &user)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Empty(t, user.Password)
}

func TestRegisterDuplicate(t *testing.T) {
	app, _ := setup(t)
	input := map[string]string{"username": "ada", "email": "ada@example.com", "password": "pw"}

	resp, _ := do(t, app, "POST", "/api/auth/register", input, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	input["email"] = "other@example.com"
	resp, body := do(t, app, "POST", "/api/auth/register", input, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Username or email already taken"}`, string(body))
}

func TestRegisterValidation(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "POST", "/api/auth/register", map[string]string{
		"username": "ada",
		"email":    "not-an-email",
	}, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var errBody struct {
		Details map[string]string `json:"details"`
	}
	decode(t, body, &errBody)
	assert.Contains(t, errBody.Details, "email")
	assert.Contains(t, errBody.Details, "password")
}

func TestGetUserNotFound(t *testing.T) {
	app, _ := setup(t)

	resp, body := do(t, app, "GET", "/api/users/nobody", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"User not found"}`, string(body))
}
