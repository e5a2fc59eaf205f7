package api

import (
	"context"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
	"github.com/dreamcraft-eng/dreamcraft-backend/policy"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser stores the authenticated user on the request context.
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// ctxGetUser returns the authenticated user, or nil for anonymous requests.
func ctxGetUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}

// actorFromCtx builds the policy actor for the request. Anonymous requests
// map to the zero actor.
func actorFromCtx(ctx context.Context) policy.Actor {
	user := ctxGetUser(ctx)
	if user == nil {
		return policy.Anonymous
	}
	return policy.Actor{
		ID:            user.ID,
		RoleName:      user.Role.Name,
		Authenticated: true,
	}
}
