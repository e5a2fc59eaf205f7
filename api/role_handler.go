package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
	"github.com/dreamcraft-eng/dreamcraft-backend/models"
	"github.com/dreamcraft-eng/dreamcraft-backend/policy"
)

type roleHandler struct {
	responder Responder
	logger    zerolog.Logger
	roleRepo  *database.RoleRepo
}

func newRoleHandler(roleRepo *database.RoleRepo) roleHandler {
	logger := log.With().Str("handlerName", "roleHandler").Logger()

	return roleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		roleRepo:  roleRepo,
	}
}

type roleRequest struct {
	Name *string `json:"name"`
}

// createRole creates a new role (admin only)
// @Summary Create role
// @Tags Roles
// @Accept json
// @Produce json
// @Param role body roleRequest true "Role data"
// @Success 201 {object} models.Role
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Router /roles [post]
func (h roleHandler) createRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req roleRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		role := models.Role{Name: strings.TrimSpace(*req.Name)}
		if err := h.roleRepo.Add(&role); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create role", "role", err))
			return
		}

		h.responder.WriteCreated(w, role)
	}
}

// readRoles lists roles
// @Summary List roles
// @Tags Roles
// @Produce json
// @Success 200 {array} models.Role
// @Router /roles [get]
func (h roleHandler) readRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		roles, err := h.roleRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find roles", "roles", err))
			return
		}

		h.responder.WriteJSON(w, roles)
	}
}

// readRole fetches one role by id
// @Summary Get role
// @Tags Roles
// @Produce json
// @Param roleID path int true "Role ID"
// @Success 200 {object} models.Role
// @Failure 404 {object} ErrorResponse "Not Found - Role not found"
// @Router /roles/{roleID} [get]
func (h roleHandler) readRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleID, err := parseIDParam(r, "roleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		role, err := h.roleRepo.FindByID(roleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find role", "role", err))
			return
		}
		if role == nil {
			h.responder.WriteError(w, errs.NewNotFound("role"))
			return
		}

		h.responder.WriteJSON(w, role)
	}
}

// updateRole renames a role (admin only)
// @Summary Update role
// @Tags Roles
// @Accept json
// @Produce json
// @Param roleID path int true "Role ID"
// @Param role body roleRequest true "Fields to update"
// @Success 200 {object} models.Role
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Role not found"
// @Router /roles/{roleID} [put]
func (h roleHandler) updateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		roleID, err := parseIDParam(r, "roleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req roleRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		fields := map[string]any{}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				h.responder.WriteError(w, errs.NewValidationError("name", "name must not be empty"))
				return
			}
			fields["name"] = strings.TrimSpace(*req.Name)
		}

		role, err := h.roleRepo.Update(roleID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update role", "role", err))
			return
		}
		if role == nil {
			h.responder.WriteError(w, errs.NewNotFound("role"))
			return
		}

		h.responder.WriteJSON(w, role)
	}
}

// deleteRole removes a role (admin only)
// @Summary Delete role
// @Tags Roles
// @Produce json
// @Param roleID path int true "Role ID"
// @Success 200 {object} models.Role "Deleted role"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Role not found"
// @Router /roles/{roleID} [delete]
func (h roleHandler) deleteRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		roleID, err := parseIDParam(r, "roleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		role, err := h.roleRepo.FindByID(roleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find role", "role", err))
			return
		}
		if role == nil {
			h.responder.WriteError(w, errs.NewNotFound("role"))
			return
		}

		if err := h.roleRepo.Delete(roleID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete role", "role", err))
			return
		}

		h.responder.WriteJSON(w, role)
	}
}
