package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler, DisableStartupMessage: true})
	app.Get("/fail", func(c *fiber.Ctx) error { return err })
	return app
}

func callFail(t *testing.T, err error) (int, string) {
	t.Helper()
	resp, reqErr := errorApp(err).Test(httptest.NewRequest("GET", "/fail", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body.Error
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", Validation("Name and email are required"), 400, "Name and email are required"},
		{"not found", NotFound("Mentor not found"), 404, "Mentor not found"},
		{"conflict", Conflict("Email already exists"), 409, "Email already exists"},
		{"unauthorized", Unauthorized(), 401, "Unauthorized"},
		{"internal hides cause", Internal(errors.New("pq: connection refused")), 500, "Internal server error"},
		{"fiber error", fiber.NewError(fiber.StatusBadRequest, "Invalid request body"), 400, "Invalid request body"},
		{"plain error", errors.New("boom"), 500, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := callFail(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestAsAppError(t *testing.T) {
	assert.Nil(t, AsAppError(nil))

	nf := NotFound("x")
	assert.Same(t, nf, AsAppError(nf))

	wrapped := AsAppError(errors.New("db down"))
	assert.True(t, IsKind(wrapped, KindInternal))
	assert.EqualError(t, errors.Unwrap(wrapped), "db down")

	var typedNil *AppError
	assert.NoError(t, AsAppError(typedNil))
}

func TestErrorHandlerTypedNil(t *testing.T) {
	var typedNil *AppError
	status, msg := callFail(t, typedNil)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", msg)
}
