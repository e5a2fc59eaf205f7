package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFile(t *testing.T, env testEnv, token, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	env := setupTest(t)
	_, adminToken := env.createUser(t, "root@example.com", "admin")

	resp := uploadFile(t, env, adminToken, "photo.JPG", "fake image bytes")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decodeBody[map[string]string](t, resp)
	url := body["file_url"]
	require.NotEmpty(t, url)
	assert.True(t, strings.HasPrefix(url, "/static/images/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	// Two uploads of the same filename never collide.
	again := uploadFile(t, env, adminToken, "photo.JPG", "other bytes")
	require.Equal(t, http.StatusOK, again.Code)
	assert.NotEqual(t, url, decodeBody[map[string]string](t, again)["file_url"])
}

func TestUploadImageAdminOnly(t *testing.T) {
	env := setupTest(t)
	_, editorToken := env.createUser(t, "ada@example.com", "editor")

	resp := uploadFile(t, env, editorToken, "photo.png", "bytes")
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = uploadFile(t, env, "", "photo.png", "bytes")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUploadImageMissingFile(t *testing.T) {
	env := setupTest(t)
	_, adminToken := env.createUser(t, "root@example.com", "admin")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
