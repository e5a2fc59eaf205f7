package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dreamcraft-eng/dreamcraft-backend/auth"
	"github.com/dreamcraft-eng/dreamcraft-backend/config"
	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/models"
	"github.com/dreamcraft-eng/dreamcraft-backend/storage"
)

const testPassword = "correct-horse-battery"

type testEnv struct {
	router *chi.Mux
	db     database.Database
	gorm   *gorm.DB
	issuer auth.TokenIssuer
}

func setupTest(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.BlogCategory{},
		&models.BlogTag{},
		&models.Blog{},
		&models.Project{},
		&models.ProjectImage{},
	))

	cfg := config.Config{
		Port:           "0",
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		UploadDir:      t.TempDir(),
		UploadPath:     "/static/images",
		AllowedOrigins: []string{"*"},
	}

	currentDB := database.New(db)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	store := storage.NewDiskStore(cfg.UploadDir, cfg.UploadPath)
	router := newRouter(cfg, currentDB, issuer, store)

	return testEnv{router: router, db: currentDB, gorm: db, issuer: issuer}
}

func (e testEnv) createRole(t *testing.T, name string) *models.Role {
	t.Helper()
	role, err := e.db.RoleRepo().FindByName(name)
	require.NoError(t, err)
	if role != nil {
		return role
	}
	role = &models.Role{Name: name}
	require.NoError(t, e.db.RoleRepo().Add(role))
	return role
}

// createUser inserts a user with the shared test password and returns the
// user plus a valid bearer token.
func (e testEnv) createUser(t *testing.T, email, roleName string) (*models.User, string) {
	t.Helper()

	role := e.createRole(t, roleName)

	hashed, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	user := &models.User{
		Name:           "Test User",
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
		RoleID:         role.ID,
	}
	require.NoError(t, e.db.UserRepo().Add(user))

	token, err := e.issuer.Issue(user.ID)
	require.NoError(t, err)

	loaded, err := e.db.UserRepo().FindByID(user.ID)
	require.NoError(t, err)
	return loaded, token
}

func (e testEnv) createBlog(t *testing.T, authorID int, title, status string, tagIDs []int) *models.Blog {
	t.Helper()

	blog := &models.Blog{
		Title:    title,
		Slug:     generateSlug(title),
		Content:  "content of " + title,
		Status:   status,
		AuthorID: authorID,
	}
	require.NoError(t, e.db.BlogRepo().Add(blog, tagIDs))
	return blog
}

func (e testEnv) createTag(t *testing.T, name string) *models.BlogTag {
	t.Helper()
	tag := &models.BlogTag{Name: name}
	require.NoError(t, e.db.TagRepo().Add(tag))
	return tag
}

// doRequest performs a JSON request against the test router. An empty token
// sends the request anonymously.
func (e testEnv) doRequest(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func httpGet(e testEnv, t *testing.T, path, token string) *httptest.ResponseRecorder {
	return e.doRequest(t, http.MethodGet, path, token, nil)
}
