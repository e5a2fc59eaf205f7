package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

func TestUpdateUserPartial(t *testing.T) {
	env := setupTest(t)
	user, token := env.createUser(t, "ada@example.com", "editor")

	resp := env.doRequest(t, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), token, map[string]any{
		"name": "Ada L.",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	updated := decodeBody[models.User](t, resp)
	assert.Equal(t, "Ada L.", updated.Name)
	// Absent fields keep their stored values.
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.RoleID, updated.RoleID)
	assert.True(t, updated.IsActive)
}

func TestUpdateUserPasswordRotation(t *testing.T) {
	env := setupTest(t)
	user, token := env.createUser(t, "ada@example.com", "editor")

	resp := env.doRequest(t, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), token, map[string]any{
		"password": "brand-new-secret",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	login := env.doRequest(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "ada@example.com",
		"password": "brand-new-secret",
	})
	assert.Equal(t, http.StatusOK, login.Code)

	stale := env.doRequest(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "ada@example.com",
		"password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, stale.Code)
}

func TestUpdateUserRoleChangeAdminOnly(t *testing.T) {
	env := setupTest(t)
	adminRole := env.createRole(t, "admin")
	user, token := env.createUser(t, "ada@example.com", "editor")

	// A non-admin may not change role_id, even on their own record.
	resp := env.doRequest(t, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), token, map[string]any{
		"role_id": adminRole.ID,
	})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	unchanged, err := env.db.UserRepo().FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleID, unchanged.RoleID)

	// An admin may.
	_, adminToken := env.createUser(t, "root@example.com", "admin")
	resp = env.doRequest(t, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), adminToken, map[string]any{
		"role_id": adminRole.ID,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	updated := decodeBody[models.User](t, resp)
	assert.Equal(t, adminRole.ID, updated.RoleID)
}

func TestUpdateUserForbiddenForStranger(t *testing.T) {
	env := setupTest(t)
	target, _ := env.createUser(t, "ada@example.com", "editor")
	_, otherToken := env.createUser(t, "grace@example.com", "editor")

	resp := env.doRequest(t, http.MethodPut, fmt.Sprintf("/users/%d", target.ID), otherToken, map[string]any{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeleteUserAdminOnly(t *testing.T) {
	env := setupTest(t)
	target, _ := env.createUser(t, "ada@example.com", "editor")
	_, editorToken := env.createUser(t, "grace@example.com", "editor")
	admin, adminToken := env.createUser(t, "root@example.com", "admin")

	resp := env.doRequest(t, http.MethodDelete, fmt.Sprintf("/users/%d", target.ID), editorToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Admins may not delete their own account through this endpoint.
	resp = env.doRequest(t, http.MethodDelete, fmt.Sprintf("/users/%d", admin.ID), adminToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = env.doRequest(t, http.MethodDelete, fmt.Sprintf("/users/%d", target.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	deleted := decodeBody[models.User](t, resp)
	assert.Equal(t, target.ID, deleted.ID)

	gone, err := env.db.UserRepo().FindByID(target.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteUserNotFound(t *testing.T) {
	env := setupTest(t)
	_, adminToken := env.createUser(t, "root@example.com", "admin")

	resp := env.doRequest(t, http.MethodDelete, "/users/9999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestReadUsersRequiresAuth(t *testing.T) {
	env := setupTest(t)
	env.createUser(t, "ada@example.com", "editor")

	resp := httpGet(env, t, "/users", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
