package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
)

func TestIsAdminCaseInsensitive(t *testing.T) {
	tests := []struct {
		role  string
		admin bool
	}{
		{"admin", true},
		{"Admin", true},
		{"ADMIN", true},
		{"author", false},
		{"administrator", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			actor := Actor{ID: 1, RoleName: tt.role, Authenticated: true}
			assert.Equal(t, tt.admin, actor.IsAdmin())
		})
	}
}

func TestAnonymousActorIsNeverAdmin(t *testing.T) {
	actor := Actor{RoleName: "admin"}
	assert.False(t, actor.IsAdmin())
}

func TestAllowAnonymousReadsPublicOnly(t *testing.T) {
	public := Resource{Kind: "blog", PubliclyReadable: true}
	private := Resource{Kind: "blog", OwnerID: 7}

	assert.NoError(t, Allow(Anonymous, ActionRead, public))
	assert.NoError(t, Allow(Anonymous, ActionList, public))

	// Reading an existing non-public resource is a permission denial, not a
	// credential failure.
	err := Allow(Anonymous, ActionRead, private)
	assert.True(t, errs.IsPermissionDenied(err))
	assert.False(t, errs.IsCredential(err))

	// Mutating anything without a credential is a credential failure.
	err = Allow(Anonymous, ActionUpdate, public)
	assert.True(t, errs.IsCredential(err))
}

func TestAllowOwnerMayMutate(t *testing.T) {
	owner := Actor{ID: 7, RoleName: "author", Authenticated: true}
	stranger := Actor{ID: 8, RoleName: "author", Authenticated: true}
	res := Resource{Kind: "blog", OwnerID: 7}

	assert.NoError(t, Allow(owner, ActionUpdate, res))
	assert.NoError(t, Allow(owner, ActionDelete, res))

	err := Allow(stranger, ActionUpdate, res)
	assert.True(t, errs.IsPermissionDenied(err))
	err = Allow(stranger, ActionDelete, res)
	assert.True(t, errs.IsPermissionDenied(err))
}

func TestAllowAdminMayMutateAnything(t *testing.T) {
	admin := Actor{ID: 99, RoleName: "Admin", Authenticated: true}
	res := Resource{Kind: "blog", OwnerID: 7}

	assert.NoError(t, Allow(admin, ActionUpdate, res))
	assert.NoError(t, Allow(admin, ActionDelete, res))
}

func TestDenialIsNeverNotFound(t *testing.T) {
	stranger := Actor{ID: 8, RoleName: "author", Authenticated: true}
	err := Allow(stranger, ActionDelete, Resource{Kind: "blog", OwnerID: 7})

	assert.Error(t, err)
	assert.False(t, errs.IsNotFound(err))
	assert.True(t, errs.IsPermissionDenied(err))
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, RequireAdmin(Actor{ID: 1, RoleName: "admin", Authenticated: true}))

	err := RequireAdmin(Actor{ID: 1, RoleName: "author", Authenticated: true})
	assert.True(t, errs.IsPermissionDenied(err))

	err = RequireAdmin(Anonymous)
	assert.True(t, errs.IsCredential(err))
}

func TestCanChangeUserRole(t *testing.T) {
	assert.NoError(t, CanChangeUserRole(Actor{ID: 1, RoleName: "admin", Authenticated: true}))

	// Not even on their own record
	author := Actor{ID: 5, RoleName: "author", Authenticated: true}
	err := CanChangeUserRole(author)
	assert.True(t, errs.IsPermissionDenied(err))
}

func TestCanAdminDeleteUser(t *testing.T) {
	admin := Actor{ID: 1, RoleName: "admin", Authenticated: true}

	assert.NoError(t, CanAdminDeleteUser(admin, 2))

	// An admin deleting their own account must use the self-service path
	err := CanAdminDeleteUser(admin, 1)
	assert.True(t, errs.IsPermissionDenied(err))

	err = CanAdminDeleteUser(Actor{ID: 3, RoleName: "author", Authenticated: true}, 2)
	assert.True(t, errs.IsPermissionDenied(err))
}

func TestCanReadBlog(t *testing.T) {
	author := Actor{ID: 7, RoleName: "author", Authenticated: true}
	stranger := Actor{ID: 8, RoleName: "author", Authenticated: true}
	admin := Actor{ID: 9, RoleName: "admin", Authenticated: true}

	// Published: everyone
	assert.NoError(t, CanReadBlog(Anonymous, 7, true))
	assert.NoError(t, CanReadBlog(stranger, 7, true))

	// Draft: author and admin only
	assert.NoError(t, CanReadBlog(author, 7, false))
	assert.NoError(t, CanReadBlog(admin, 7, false))

	// Every draft denial, anonymous included, is permission-denied
	err := CanReadBlog(stranger, 7, false)
	assert.True(t, errs.IsPermissionDenied(err))
	err = CanReadBlog(Anonymous, 7, false)
	assert.True(t, errs.IsPermissionDenied(err))
	assert.False(t, errs.IsCredential(err))
}
