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

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// createCategory creates a blog category (admin only)
// @Summary Create category
// @Tags Blog Categories
// @Accept json
// @Produce json
// @Param category body categoryRequest true "Category data"
// @Success 201 {object} models.BlogCategory
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Router /categories [post]
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req categoryRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		category := models.BlogCategory{
			Name:        strings.TrimSpace(*req.Name),
			Description: req.Description,
		}
		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create category", "category", err))
			return
		}

		h.responder.WriteCreated(w, category)
	}
}

// readCategories lists categories, publicly readable
// @Summary List categories
// @Tags Blog Categories
// @Produce json
// @Success 200 {array} models.BlogCategory
// @Router /categories [get]
func (h categoryHandler) readCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		categories, err := h.categoryRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

// readCategory fetches one category by id
// @Summary Get category
// @Tags Blog Categories
// @Produce json
// @Param categoryID path int true "Category ID"
// @Success 200 {object} models.BlogCategory
// @Failure 404 {object} ErrorResponse "Not Found - Category not found"
// @Router /categories/{categoryID} [get]
func (h categoryHandler) readCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFound("category"))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// updateCategory partially updates a category (admin only)
// @Summary Update category
// @Tags Blog Categories
// @Accept json
// @Produce json
// @Param categoryID path int true "Category ID"
// @Param category body categoryRequest true "Fields to update"
// @Success 200 {object} models.BlogCategory
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Category not found"
// @Router /categories/{categoryID} [put]
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req categoryRequest
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

		category, err := h.categoryRepo.Update(categoryID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update category", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFound("category"))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes a category (admin only). Blogs in the category are
// kept with their category cleared.
// @Summary Delete category
// @Tags Blog Categories
// @Produce json
// @Param categoryID path int true "Category ID"
// @Success 200 {object} models.BlogCategory "Deleted category"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 404 {object} ErrorResponse "Not Found - Category not found"
// @Router /categories/{categoryID} [delete]
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFound("category"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete category", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}
