package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelCheckers(t *testing.T) {
	cases := []struct {
		name    string
		err     *ApiErr
		status  int
		matches func(error) bool
	}{
		{"validation", NewValidationError("title", "must not be empty"), http.StatusBadRequest, IsValidation},
		{"missing field", NewMissingRequiredFieldError("email"), http.StatusBadRequest, IsValidation},
		{"malformed body", Malformed("request body"), http.StatusBadRequest, IsValidation},
		{"not found", NewNotFound("blog"), http.StatusNotFound, IsNotFound},
		{"permission denied", NewPermissionDenied("not enough permissions"), http.StatusForbidden, IsPermissionDenied},
		{"conflict", NewConflict("user"), http.StatusConflict, IsConflict},
		{"credential", NewCredentialError(), http.StatusUnauthorized, IsCredential},
		{"missing token", NewMissingTokenError(), http.StatusUnauthorized, IsCredential},
		{"expired token", NewExpiredTokenError(), http.StatusUnauthorized, IsCredential},
		{"storage", NewStorageError("write upload file", errors.New("disk full")), http.StatusInternalServerError, IsStorageIO},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.StatusCode)
			assert.True(t, tc.matches(tc.err))
		})
	}
}

func TestCheckersTellCasesApart(t *testing.T) {
	denied := NewPermissionDenied("not enough permissions")
	assert.False(t, IsNotFound(denied))
	assert.False(t, IsCredential(denied))

	missing := NewNotFound("blog")
	assert.False(t, IsPermissionDenied(missing))
}

func TestDatabaseErrorTranslation(t *testing.T) {
	cases := []struct {
		name    string
		cause   error
		status  int
		matches func(error) bool
	}{
		{"postgres duplicate", errors.New(`duplicate key value violates unique constraint "idx_users_email"`), http.StatusConflict, IsConflict},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: users.email"), http.StatusConflict, IsConflict},
		{"postgres fk", errors.New(`insert or update violates foreign key constraint "fk_blogs_category"`), http.StatusBadRequest, IsValidation},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest, IsValidation},
		{"not found", errors.New("record not found"), http.StatusNotFound, IsNotFound},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError, IsStorageIO},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("create", "user", tc.cause)
			assert.Equal(t, tc.status, err.StatusCode)
			assert.True(t, tc.matches(err))
			assert.ErrorIs(t, err.Cause, tc.cause)
		})
	}
}

func TestGetFullErrorIncludesCauses(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("write upload file", cause)

	full := err.GetFullError()
	assert.Contains(t, full, "failed to write upload file")
	assert.Contains(t, full, "disk full")
}
