package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
)

// TokenIssuer signs and verifies the opaque bearer credentials handed to
// clients. The token encodes the subject user id and an expiry; nothing else
// about its format is promised to callers.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token whose subject is the given user id.
func (t TokenIssuer) Issue(userID int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to sign token", err)
	}
	return signed, nil
}

// Verify parses a bearer token and returns the subject user id. Expired and
// otherwise invalid tokens come back as distinguishable credential errors.
func (t TokenIssuer) Verify(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, errs.NewExpiredTokenError()
		}
		return 0, errs.NewInvalidTokenError()
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return 0, errs.NewInvalidTokenError()
	}

	userID, err := strconv.Atoi(subject)
	if err != nil {
		return 0, errs.NewInvalidTokenError()
	}
	return userID, nil
}
