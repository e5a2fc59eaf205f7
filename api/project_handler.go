package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
	"github.com/dreamcraft-eng/dreamcraft-backend/models"
	"github.com/dreamcraft-eng/dreamcraft-backend/policy"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

type projectCreateRequest struct {
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Location       string     `json:"location"`
	ImageURL       string     `json:"image_url"`
	Client         string     `json:"client"`
	CompletionDate *time.Time `json:"completion_date"`
	Value          string     `json:"value"`
	Description    string     `json:"description"`
	ImageURLs      []string   `json:"image_urls"`
}

type projectUpdateRequest struct {
	Title          *string    `json:"title"`
	Category       *string    `json:"category"`
	Location       *string    `json:"location"`
	ImageURL       *string    `json:"image_url"`
	Client         *string    `json:"client"`
	CompletionDate *time.Time `json:"completion_date"`
	Value          *string    `json:"value"`
	Description    *string    `json:"description"`
}

// readProjects lists all projects with their gallery images, publicly readable
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h projectHandler) readProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		projects, err := h.projectRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// readProject fetches one project by id
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{projectID} [get]
func (h projectHandler) readProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a project with its gallery (admin only). The project
// row and one ProjectImage per URL are written atomically.
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectCreateRequest true "Project data"
// @Success 201 {object} models.Project "Created project with images"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req projectCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		project := models.Project{
			Title:          req.Title,
			Category:       req.Category,
			Location:       req.Location,
			ImageURL:       req.ImageURL,
			Client:         req.Client,
			CompletionDate: req.CompletionDate,
			Value:          req.Value,
			Description:    req.Description,
		}
		if err := h.projectRepo.Add(&project, req.ImageURLs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		h.responder.WriteCreated(w, created)
	}
}

// updateProject partially updates a project (admin only)
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body projectUpdateRequest true "Fields to update"
// @Success 200 {object} models.Project
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req projectUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		fields := map[string]any{}
		if req.Title != nil {
			if *req.Title == "" {
				h.responder.WriteError(w, errs.NewValidationError("title", "title must not be empty"))
				return
			}
			fields["title"] = *req.Title
		}
		if req.Category != nil {
			fields["category"] = *req.Category
		}
		if req.Location != nil {
			fields["location"] = *req.Location
		}
		if req.ImageURL != nil {
			fields["image_url"] = *req.ImageURL
		}
		if req.Client != nil {
			fields["client"] = *req.Client
		}
		if req.CompletionDate != nil {
			fields["completion_date"] = *req.CompletionDate
		}
		if req.Value != nil {
			fields["value"] = *req.Value
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}

		project, err := h.projectRepo.Update(projectID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project and its entire gallery as one unit (admin only)
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.Project "Deleted project"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}
