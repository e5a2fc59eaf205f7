// Package policy decides whether an actor may perform an action on a
// resource. It is the single place the role check lives; handlers consult it
// instead of comparing role names themselves. The package has no transport or
// storage dependencies so the rules can be tested as plain functions.
package policy

import (
	"strings"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

// Actor is the caller attempting an action. The zero value is the anonymous
// (unauthenticated) actor.
type Actor struct {
	ID            int
	RoleName      string
	Authenticated bool
}

// Anonymous is the unauthenticated actor.
var Anonymous = Actor{}

// IsAdmin reports whether the actor carries the admin role. The comparison is
// case-insensitive: "Admin" and "ADMIN" grant the same rights as "admin".
func (a Actor) IsAdmin() bool {
	return a.Authenticated && strings.EqualFold(a.RoleName, "admin")
}

// Resource describes the target of an action. OwnerID is zero for resources
// without an owner field. PubliclyReadable marks resources anyone may read:
// published blogs, categories, tags, and projects.
type Resource struct {
	Kind             string
	OwnerID          int
	PubliclyReadable bool
}

// Allow returns nil when the actor may perform the action on the resource,
// or a permission-denied error otherwise. Denials are never reported as
// not-found; callers must be able to tell absence from denial. An anonymous
// read of an existing non-public resource is a permission denial, not a
// credential failure: the request itself is well-formed, the resource is just
// not visible. Anonymous mutations are credential failures.
func Allow(actor Actor, action Action, res Resource) error {
	if !actor.Authenticated {
		if action == ActionRead || action == ActionList {
			if res.PubliclyReadable {
				return nil
			}
			return errs.NewPermissionDenied("not enough permissions")
		}
		return errs.NewMissingTokenError()
	}

	if actor.IsAdmin() {
		return nil
	}

	switch action {
	case ActionRead, ActionList:
		if res.PubliclyReadable || (res.OwnerID != 0 && res.OwnerID == actor.ID) {
			return nil
		}
	case ActionUpdate, ActionDelete:
		if res.OwnerID != 0 && res.OwnerID == actor.ID {
			return nil
		}
	}

	return errs.NewPermissionDenied("not enough permissions")
}

// RequireAdmin denies every actor that does not carry the admin role.
// Role, category, tag, and project mutation go through this check.
func RequireAdmin(actor Actor) error {
	if !actor.Authenticated {
		return errs.NewMissingTokenError()
	}
	if !actor.IsAdmin() {
		return errs.NewPermissionDenied("admin role required")
	}
	return nil
}

// RequireAuthenticated denies the anonymous actor only.
func RequireAuthenticated(actor Actor) error {
	if !actor.Authenticated {
		return errs.NewMissingTokenError()
	}
	return nil
}

// CanChangeUserRole decides whether the actor may set or change a user's
// role_id. Only admins may, even on their own record.
func CanChangeUserRole(actor Actor) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewPermissionDenied("only an admin may change a user's role")
	}
	return nil
}

// CanAdminDeleteUser decides whether the actor may delete another user's
// account. Admins may delete any account except their own; self-service
// deletion is a separate operation that targets the actor's own record.
func CanAdminDeleteUser(actor Actor, targetUserID int) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if actor.ID == targetUserID {
		return errs.NewPermissionDenied("use the account deletion endpoint to remove your own account")
	}
	return nil
}

// CanReadBlog decides visibility of a single blog. Published blogs are
// public; drafts are visible to their author and to admins only.
func CanReadBlog(actor Actor, authorID int, published bool) error {
	return Allow(actor, ActionRead, Resource{
		Kind:             "blog",
		OwnerID:          authorID,
		PubliclyReadable: published,
	})
}

// CanMutateBlog decides update/delete rights on a blog: its author or an
// admin, everyone else is denied.
func CanMutateBlog(actor Actor, authorID int) error {
	return Allow(actor, ActionUpdate, Resource{Kind: "blog", OwnerID: authorID})
}

// CanMutateUser decides update rights on a user record: the user themselves
// or an admin.
func CanMutateUser(actor Actor, targetUserID int) error {
	return Allow(actor, ActionUpdate, Resource{Kind: "user", OwnerID: targetUserID})
}
