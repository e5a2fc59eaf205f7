package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dreamcraft-eng/dreamcraft-backend/auth"
	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
	"github.com/dreamcraft-eng/dreamcraft-backend/storage"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler      authHandler
	userHandler      userHandler
	roleHandler      roleHandler
	categoryHandler  categoryHandler
	tagHandler       tagHandler
	blogHandler      blogHandler
	projectHandler   projectHandler
	uploadHandler    uploadHandler
	dashboardHandler dashboardHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, issuer auth.TokenIssuer, store storage.Store) *routeHandlers {
	return &routeHandlers{
		authHandler:      newAuthHandler(db.UserRepo(), db.RoleRepo(), issuer),
		userHandler:      newUserHandler(db.UserRepo(), db.RoleRepo()),
		roleHandler:      newRoleHandler(db.RoleRepo()),
		categoryHandler:  newCategoryHandler(db.CategoryRepo()),
		tagHandler:       newTagHandler(db.TagRepo()),
		blogHandler:      newBlogHandler(db.BlogRepo(), db.CategoryRepo()),
		projectHandler:   newProjectHandler(db.ProjectRepo()),
		uploadHandler:    newUploadHandler(store),
		dashboardHandler: newDashboardHandler(db.StatsRepo()),
	}
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// parseIDParam extracts a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// paginationParams reads skip/limit query parameters with defaults of 0/100.
func paginationParams(r *http.Request) (skip, limit int) {
	skip, limit = 0, 100
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	return skip, limit
}

// decodeJSON decodes the request body into dst, rejecting unparseable input.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.Malformed("request body")
	}
	return nil
}
