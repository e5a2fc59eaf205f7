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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

type tagRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// createTag creates a blog tag (admin only)
// @Summary Create tag
// @Tags Blog Tags
// @Accept json
// @Produce json
// @Param tag body tagRequest true "Tag data"
// @Success 201 {object} models.BlogTag
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Router /tags [post]
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req tagRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		tag := models.BlogTag{
			Name:        strings.TrimSpace(*req.Name),
			Description: req.Description,
		}
		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create tag", "tag", err))
			return
		}

		h.responder.WriteCreated(w, tag)
	}
}

// readTags lists tags, publicly readable
// @Summary List tags
// @Tags Blog Tags
// @Produce json
// @Success 200 {array} models.BlogTag
// @Router /tags [get]
func (h tagHandler) readTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		tags, err := h.tagRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}

		h.responder.WriteJSON(w, tags)
	}
}

// readTag fetches one tag by id
// @Summary Get tag
// @Tags Blog Tags
// @Produce json
// @Param tagID path int true "Tag ID"
// @Success 200 {object} models.BlogTag
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Router /tags/{tagID} [get]
func (h tagHandler) readTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFound("tag"))
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

// updateTag partially updates a tag (admin only)
// @Summary Update tag
// @Tags Blog Tags
// @Accept json
// @Produce json
// @Param tagID path int true "Tag ID"
// @Param tag body tagRequest true "Fields to update"
// @Success 200 {object} models.BlogTag
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Router /tags/{tagID} [put]
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req tagRequest
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
		if req.Description != nil {
			fields["description"] = req.Description
		}

		tag, err := h.tagRepo.Update(tagID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update tag", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFound("tag"))
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

// deleteTag removes a tag and detaches it from blogs (admin only)
// @Summary Delete tag
// @Tags Blog Tags
// @Produce json
// @Param tagID path int true "Tag ID"
// @Success 200 {object} models.BlogTag "Deleted tag"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Router /tags/{tagID} [delete]
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFound("tag"))
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete tag", "tag", err))
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}
