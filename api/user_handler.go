package api

import (
	"net/http"
	"net/mail"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/auth"
	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
	"github.com/dreamcraft-eng/dreamcraft-backend/policy"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	roleRepo  *database.RoleRepo
}

func newUserHandler(userRepo *database.UserRepo, roleRepo *database.RoleRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		roleRepo:  roleRepo,
	}
}

// userUpdateRequest is a partial update: only fields present in the payload
// are applied.
type userUpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"is_active"`
	RoleID      *int    `json:"role_id"`
}

// readUsers lists users
// @Summary List users
// @Tags Users
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.User
// @Router /users [get]
func (h userHandler) readUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		users, err := h.userRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find users", "users", err))
			return
		}

		h.responder.WriteJSON(w, users)
	}
}

// readUser fetches one user by id
// @Summary Get user
// @Tags Users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Router /users/{userID} [get]
func (h userHandler) readUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFound("user"))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

// updateUser partially updates a user record. Admins may update anyone; a
// user may update their own record but never their role_id.
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param user body userUpdateRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 403 {object} ErrorResponse "Forbidden - Not enough permissions"
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Router /users/{userID} [put]
func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		if err := policy.CanMutateUser(actor, userID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req userUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Role reassignment is admin-only, even on one's own record.
		if req.RoleID != nil {
			if err := policy.CanChangeUserRole(actor); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		fields := map[string]any{}
		if req.Name != nil {
			fields["name"] = *req.Name
		}
		if req.Email != nil {
			if _, err := mail.ParseAddress(*req.Email); err != nil {
				h.responder.WriteError(w, errs.NewValidationError("email", "malformed email address"))
				return
			}
			fields["email"] = *req.Email
		}
		if req.PhoneNumber != nil {
			fields["phone_number"] = *req.PhoneNumber
		}
		if req.IsActive != nil {
			fields["is_active"] = *req.IsActive
		}
		if req.Password != nil {
			hashed, err := auth.HashPassword(*req.Password)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			fields["hashed_password"] = hashed
		}
		if req.RoleID != nil {
			role, err := h.roleRepo.FindByID(*req.RoleID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find role", "role", err))
				return
			}
			if role == nil {
				h.responder.WriteError(w, errs.NewValidationError("role_id", "role does not exist"))
				return
			}
			fields["role_id"] = *req.RoleID
		}

		updated, err := h.userRepo.Update(userID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update user", "user", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFound("user"))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteUser removes another user's account. Admin only; an admin targeting
// their own id is refused and pointed at DELETE /auth/me instead.
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} models.User "Deleted user"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required or self-deletion attempted"
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Router /users/{userID} [delete]
func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		if err := policy.CanAdminDeleteUser(actor, userID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFound("user"))
			return
		}

		if err := h.userRepo.Delete(userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete user", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}
