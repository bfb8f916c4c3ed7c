package validation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proptrack/internal/response"
	"proptrack/internal/validation"
)

func newValidationApp(stage fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler(zerolog.Nop()),
	})
	app.Post("/", stage, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func post(t *testing.T, app *fiber.App, body map[string]any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestPropertyCreateRequiresAllFields(t *testing.T) {
	app := newValidationApp(validation.PropertyCreate)

	resp := post(t, app, map[string]any{"name": "Only name"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(response.TypeValidation), body["type"])
	assert.NotEmpty(t, body["errors"])
}

func TestPropertyCreateAcceptsCompletePayload(t *testing.T) {
	app := newValidationApp(validation.PropertyCreate)

	resp := post(t, app, map[string]any{
		"name":             "Harbor View",
		"type":             "apartment",
		"numberOfUnits":    0,
		"constructionYear": 1998,
		"currentValue":     0.0,
		"city":             "Rotterdam",
		"country":          "NL",
		"street":           "Kade 4",
		"postcode":         "3011AB",
		"state":            "ZH",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPropertyUpdateAllowsSubsets(t *testing.T) {
	app := newValidationApp(validation.PropertyUpdate)

	resp := post(t, app, map[string]any{"name": "Renamed"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = post(t, app, map[string]any{})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPropertyUpdateChecksPresentFields(t *testing.T) {
	app := newValidationApp(validation.PropertyUpdate)

	testCases := []map[string]any{
		{"currentValue": -1.0},
		{"numberOfUnits": -3},
		{"constructionYear": 99},
	}

	for _, body := range testCases {
		resp := post(t, app, body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}
