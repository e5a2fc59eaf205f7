package errs

import (
	"errors"
	"net/http"
)

// Authentication errors. All of them unwrap to ErrCredential so a missing,
// malformed, or expired token is never silently treated as anonymous.
var (
	ErrMissingToken = errors.New("missing access token")
	ErrExpiredToken = errors.New("expired access token")
	ErrInvalidToken = errors.New("invalid access token")
)

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrCredential,
		Details:    ErrMissingToken.Error(),
		Field:      "authorization",
		Cause:      ErrMissingToken,
	}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrCredential,
		Details:    ErrExpiredToken.Error(),
		Field:      "authorization",
		Cause:      ErrExpiredToken,
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrCredential,
		Details:    ErrInvalidToken.Error(),
		Field:      "authorization",
		Cause:      ErrInvalidToken,
	}
}

// NewCredentialError reports a failed login attempt. The message is the same
// for an unknown email and a wrong password.
func NewCredentialError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrCredential,
		Details:    "incorrect email or password",
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    "missing required field: " + fieldName,
		Field:      fieldName,
	}
}

func Malformed(payloadName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    payloadName + " malformed",
	}
}
