package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"coursehub/backend/config"
	"coursehub/backend/routes"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var testCfg = &config.Config{
	StorageDriver: config.DriverMemory,
	JWTSecret:     "testsecret",
	ServerPort:    "8080",
	LogFormat:     config.LogFormatPlain,
	CORSOrigins:   "*",
}

func newApp(store storage.Storage) *fiber.App {
	return routes.NewApp(store, testCfg, log.New(io.Discard, "", 0))
}

func setup(t *testing.T) (*fiber.App, *storage.MemStorage) {
	t.Helper()
	store := storage.NewMemStorage()
	return newApp(store), store
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(userID, testCfg)
	require.NoError(t, err)
	return token
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v), string(data))
}

func urlEncode(s string) string {
	return url.QueryEscape(s)
}
