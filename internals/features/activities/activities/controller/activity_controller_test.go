package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "mentoring_backend/internals/helpers"
)

// Bad query parameters are rejected before the service is reached.
func TestListRejectsBadQuery(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctrl := NewActivityController(nil)
	app.Get("/activities", ctrl.List)
	app.Get("/activities/:id", ctrl.Get)

	for _, path := range []string{
		"/activities?parent_id=abc",
		"/activities?is_completed=maybe",
		"/activities?page=0",
		"/activities/xyz",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}
