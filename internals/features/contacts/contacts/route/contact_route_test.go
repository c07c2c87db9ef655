package route

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentoring_backend/internals/features/contacts/contacts/dto"
	"mentoring_backend/internals/features/contacts/contacts/model"
	helper "mentoring_backend/internals/helpers"
)

type stubService struct {
	lastType  model.ContactType
	lastQuery dto.ListContactsQuery
	lastID    int64
	lastBody  dto.ContactPayload
	err       error
}

func (s *stubService) List(ctx context.Context, t model.ContactType, q dto.ListContactsQuery) (*dto.ContactList, error) {
	s.lastType, s.lastQuery = t, q
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ContactList{Data: []dto.ContactResponse{}, Pagination: helper.BuildPagination(0, q.Paging)}, nil
}

func (s *stubService) DetailValues(ctx context.Context, t model.ContactType) ([]string, error) {
	s.lastType = t
	return []string{"Data Science", "Design"}, s.err
}

func (s *stubService) Get(ctx context.Context, t model.ContactType, id int64) (*dto.ContactDetailResponse, error) {
	s.lastType, s.lastID = t, id
	if s.err != nil {
		return nil, s.err
	}
	mentees := []dto.RelatedContactResponse{}
	return &dto.ContactDetailResponse{
		ContactResponse: dto.ContactResponse{ID: id, Type: t, Name: "Jan", Details: &model.MentorDetails{}},
		Mentees:         &mentees,
	}, nil
}

func (s *stubService) Create(ctx context.Context, t model.ContactType, p dto.ContactPayload) (*dto.ContactResponse, error) {
	s.lastType, s.lastBody = t, p
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ContactResponse{ID: 1, Type: t, Name: *p.Name}, nil
}

func (s *stubService) Update(ctx context.Context, t model.ContactType, id int64, p dto.ContactPayload) (*dto.ContactResponse, error) {
	s.lastType, s.lastID, s.lastBody = t, id, p
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ContactResponse{ID: id, Type: t}, nil
}

func (s *stubService) Delete(ctx context.Context, t model.ContactType, id int64) error {
	s.lastType, s.lastID = t, id
	return s.err
}

func newApp(svc *stubService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	MountContactRoutes(app, svc)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestListRoutesPerType(t *testing.T) {
	svc := &stubService{}
	app := newApp(svc)

	status, body := do(t, app, "GET", "/contacts/mentees?page=2&limit=500&search=ann&status=active&area_of_interest=UX", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, model.ContactTypeMentee, svc.lastType)
	assert.Equal(t, 2, svc.lastQuery.Page)
	assert.Equal(t, 100, svc.lastQuery.Limit)
	assert.Equal(t, 100, svc.lastQuery.Offset)
	assert.Equal(t, "ann", svc.lastQuery.Search)
	assert.Equal(t, "active", svc.lastQuery.Status)
	assert.Equal(t, "UX", svc.lastQuery.FieldValue)
	assert.Equal(t, []any{}, body["data"])
	assert.Equal(t, map[string]any{"page": 2.0, "limit": 100.0, "total": 0.0, "pages": 0.0}, body["pagination"])
}

func TestListInvalidPaging(t *testing.T) {
	app := newApp(&stubService{})
	for _, q := range []string{"page=0", "page=abc", "limit=-5"} {
		status, body := do(t, app, "GET", "/contacts/mentors?"+q, "")
		assert.Equal(t, fiber.StatusBadRequest, status, q)
		assert.NotEmpty(t, body["error"])
	}
}

func TestSpecializationsRoute(t *testing.T) {
	svc := &stubService{}
	status, body := do(t, newApp(svc), "GET", "/contacts/mentors/specializations", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{"Data Science", "Design"}, body["data"])
	assert.Equal(t, model.ContactTypeMentor, svc.lastType)
}

func TestGetRoute(t *testing.T) {
	svc := &stubService{}
	app := newApp(svc)

	status, body := do(t, app, "GET", "/contacts/mentors/7", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, int64(7), svc.lastID)
	assert.Equal(t, []any{}, body["mentees"])

	status, _ = do(t, app, "GET", "/contacts/mentors/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	svc.err = helper.NotFound("Mentor not found")
	status, body = do(t, app, "GET", "/contacts/mentors/8", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Mentor not found", body["error"])
}

func TestCreateRoute(t *testing.T) {
	svc := &stubService{}
	app := newApp(svc)

	status, body := do(t, app, "POST", "/contacts/supporters", `{"name":"Sam","email":"sam@x.io","support_area":"events"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Sam", body["name"])
	assert.Equal(t, model.ContactTypeSupporter, svc.lastType)
	assert.Contains(t, string(svc.lastBody.Raw), "support_area")

	status, body = do(t, app, "POST", "/contacts/supporters", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["error"])

	svc.err = helper.Conflict("Email already exists")
	status, body = do(t, app, "POST", "/contacts/supporters", `{"name":"Sam","email":"sam@x.io"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestUpdateAndDeleteRoutes(t *testing.T) {
	svc := &stubService{}
	app := newApp(svc)

	status, _ := do(t, app, "PUT", "/contacts/mentees/3", `{"status":"active"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, int64(3), svc.lastID)
	assert.Equal(t, "active", *svc.lastBody.Status)

	status, body := do(t, app, "DELETE", "/contacts/mentees/3", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Mentee deleted successfully", body["message"])

	svc.err = helper.Internal(assert.AnError)
	status, body = do(t, app, "DELETE", "/contacts/mentees/3", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
}
