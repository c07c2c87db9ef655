package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "mentoring_backend/internals/helpers"
)

func TestCreateOrganizationDefaults(t *testing.T) {
	var req CreateOrganizationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Fundacja","email":" Biuro@Fundacja.org ","contact_person":""}`), &req))
	req.Normalize()
	require.NoError(t, helper.NewValidator().Struct(&req))

	m := req.ToModel()
	assert.Equal(t, "active", m.Status)
	assert.Equal(t, "biuro@fundacja.org", *m.Email)
	assert.Nil(t, m.ContactPerson)
}

func TestPatchOrganization(t *testing.T) {
	v := helper.NewValidator()

	var p PatchOrganizationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"summary_comment":null,"status":"paused"}`), &p))
	p.Normalize()
	require.NoError(t, p.Validate(v))
	assert.Equal(t, map[string]any{"summary_comment": nil, "status": "paused"}, p.BuildUpdateMap())

	var bad PatchOrganizationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"not-an-email"}`), &bad))
	bad.Normalize()
	assert.EqualError(t, bad.Validate(v), "email must be a valid email address")
}
