package service

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentoring_backend/internals/features/contacts/contacts/controller"
	"mentoring_backend/internals/features/contacts/contacts/model"
	helper "mentoring_backend/internals/helpers"
)

// httpApp serves the mentor endpoints with the real service and error handler.
func httpApp(store *fakeStore) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler, DisableStartupMessage: true})
	app.Use(recover.New())

	ctrl := controller.NewContactController(newService(store), model.ContactTypeMentor)
	app.Get("/contacts/mentors/:id", ctrl.Get)
	app.Delete("/contacts/mentors/:id", ctrl.Delete)
	return app
}

func call(t *testing.T, app *fiber.App, method, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func TestDeleteOverHTTP(t *testing.T) {
	store := newFakeStore()
	mentor := store.seed(model.ContactTypeMentor, "Jan", "jan@x.io", "active", `{}`, base)
	mentee := store.seed(model.ContactTypeMentee, "Ewa", "ewa@x.io", "active", `{}`, base)
	store.relations = []fakeRelation{{id: 1, mentorID: mentor, menteeID: mentee, status: "current"}}
	app := httpApp(store)

	status, body := call(t, app, "DELETE", "/contacts/mentors/1")
	assert.Equal(t, 200, status)
	assert.Equal(t, "Mentor deleted successfully", body["message"])
	assert.NotContains(t, store.contacts, mentor)
	assert.Empty(t, store.relations)

	status, body = call(t, app, "DELETE", "/contacts/mentors/1")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Mentor not found", body["error"])

	status, _ = call(t, app, "GET", "/contacts/mentors/1")
	assert.Equal(t, 404, status)
}

func TestDeleteMenteeThroughMentorPathIsNotFound(t *testing.T) {
	store := newFakeStore()
	store.seed(model.ContactTypeMentee, "Ewa", "ewa@x.io", "active", `{}`, base)

	status, body := call(t, httpApp(store), "DELETE", "/contacts/mentors/1")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Mentor not found", body["error"])
	assert.Len(t, store.contacts, 1)
}
