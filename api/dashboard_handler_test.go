package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

func TestDashboardStats(t *testing.T) {
	env := setupTest(t)
	author, _ := env.createUser(t, "ada@example.com", "editor")
	_, adminToken := env.createUser(t, "root@example.com", "admin")

	env.createBlog(t, author.ID, "Live One", models.BlogStatusPublished, nil)
	env.createBlog(t, author.ID, "Live Two", models.BlogStatusPublished, nil)
	env.createBlog(t, author.ID, "In Progress", models.BlogStatusDraft, nil)
	env.createTag(t, "go")
	require.NoError(t, env.db.CategoryRepo().Add(&models.BlogCategory{Name: "Engineering"}))

	resp := httpGet(env, t, "/dashboard/stats", adminToken)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	stats := decodeBody[database.DashboardStats](t, resp)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.PublishedBlogs)
	assert.Equal(t, int64(1), stats.DraftBlogs)
	assert.Equal(t, int64(1), stats.TotalCategories)
	assert.Equal(t, int64(1), stats.TotalTags)
}

func TestDashboardStatsReflectsChanges(t *testing.T) {
	env := setupTest(t)
	author, authorToken := env.createUser(t, "ada@example.com", "editor")
	_, adminToken := env.createUser(t, "root@example.com", "admin")
	draft := env.createBlog(t, author.ID, "Soon", models.BlogStatusDraft, nil)

	before := decodeBody[database.DashboardStats](t, httpGet(env, t, "/dashboard/stats", adminToken))
	assert.Equal(t, int64(1), before.DraftBlogs)
	assert.Equal(t, int64(0), before.PublishedBlogs)

	resp := env.doRequest(t, http.MethodPut, fmt.Sprintf("/blogs/%d", draft.ID), authorToken, map[string]any{
		"status": models.BlogStatusPublished,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	after := decodeBody[database.DashboardStats](t, httpGet(env, t, "/dashboard/stats", adminToken))
	assert.Equal(t, int64(0), after.DraftBlogs)
	assert.Equal(t, int64(1), after.PublishedBlogs)
}

func TestDashboardStatsAdminOnly(t *testing.T) {
	env := setupTest(t)
	_, editorToken := env.createUser(t, "ada@example.com", "editor")

	resp := httpGet(env, t, "/dashboard/stats", editorToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = httpGet(env, t, "/dashboard/stats", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// dashboardBlogs is intentionally looser than stats: any authenticated user
// may list every blog, drafts included.
func TestDashboardBlogsAnyAuthenticated(t *testing.T) {
	env := setupTest(t)
	author, _ := env.createUser(t, "ada@example.com", "editor")
	_, editorToken := env.createUser(t, "grace@example.com", "editor")
	env.createBlog(t, author.ID, "Live", models.BlogStatusPublished, nil)
	env.createBlog(t, author.ID, "Hidden", models.BlogStatusDraft, nil)

	resp := httpGet(env, t, "/blogs/dashboard", editorToken)
	require.Equal(t, http.StatusOK, resp.Code)
	blogs := decodeBody[[]models.Blog](t, resp)
	assert.Len(t, blogs, 2)

	anon := httpGet(env, t, "/blogs/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, anon.Code)
}
