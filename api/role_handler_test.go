package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

func TestRoleLifecycle(t *testing.T) {
	env := setupTest(t)
	_, adminToken := env.createUser(t, "root@example.com", "admin")

	resp := env.doRequest(t, http.MethodPost, "/roles", adminToken, map[string]any{"name": "reviewer"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	role := decodeBody[models.Role](t, resp)
	assert.Equal(t, "reviewer", role.Name)

	resp = env.doRequest(t, http.MethodPut, fmt.Sprintf("/roles/%d", role.ID), adminToken, map[string]any{
		"name": "moderator",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "moderator", decodeBody[models.Role](t, resp).Name)

	single := httpGet(env, t, fmt.Sprintf("/roles/%d", role.ID), adminToken)
	assert.Equal(t, http.StatusOK, single.Code)

	resp = env.doRequest(t, http.MethodDelete, fmt.Sprintf("/roles/%d", role.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	missing := httpGet(env, t, fmt.Sprintf("/roles/%d", role.ID), adminToken)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestRoleMutationsAdminOnly(t *testing.T) {
	env := setupTest(t)
	_, editorToken := env.createUser(t, "ada@example.com", "editor")

	resp := env.doRequest(t, http.MethodPost, "/roles", editorToken, map[string]any{"name": "sneaky"})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	role, err := env.db.RoleRepo().FindByName("sneaky")
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestCreateRoleBlankName(t *testing.T) {
	env := setupTest(t)
	_, adminToken := env.createUser(t, "root@example.com", "admin")

	resp := env.doRequest(t, http.MethodPost, "/roles", adminToken, map[string]any{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
