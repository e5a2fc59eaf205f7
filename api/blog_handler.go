package api

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
	"github.com/dreamcraft-eng/dreamcraft-backend/models"
	"github.com/dreamcraft-eng/dreamcraft-backend/policy"
)

type blogHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogRepo     *database.BlogRepo
	categoryRepo *database.CategoryRepo
}

func newBlogHandler(blogRepo *database.BlogRepo, categoryRepo *database.CategoryRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
	}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// generateSlug turns a title into a URL-safe slug: lowercase, alphanumerics
// kept, runs of spaces and dashes collapsed to single dashes.
func generateSlug(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	lastDash := true
	for _, r := range title {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

type blogCreateRequest struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	ImageURL   string `json:"image_url"`
	Status     string `json:"status"`
	CategoryID *int   `json:"category_id"`
	TagIDs     []int  `json:"tag_ids"`
}

type blogUpdateRequest struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"image_url"`
	Status     *string `json:"status"`
	CategoryID *int    `json:"category_id"`
	TagIDs     *[]int  `json:"tag_ids"`
}

func (h blogHandler) validateCategory(id int) error {
	category, err := h.categoryRepo.FindByID(id)
	if err != nil {
		return wrapDatabaseError("find category", "category", err)
	}
	if category == nil {
		return errs.NewValidationError("category_id", "category does not exist")
	}
	return nil
}

// createBlog creates a blog authored by the caller. The supplied tag ids are
// resolved against the tag table; unknown ids are dropped.
// @Summary Create blog
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blog body blogCreateRequest true "Blog data"
// @Success 201 {object} models.Blog "Created blog with tags"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog data"
// @Router /blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFromCtx(r.Context())

		var req blogCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		if req.Status == "" {
			req.Status = models.BlogStatusDraft
		}
		if !models.ValidBlogStatus(req.Status) {
			h.responder.WriteError(w, errs.NewValidationError("status", "status must be draft or published"))
			return
		}

		if req.Slug == "" {
			req.Slug = generateSlug(req.Title)
		}
		if !slugPattern.MatchString(req.Slug) {
			h.responder.WriteError(w, errs.NewValidationError("slug", "slug must be URL-safe"))
			return
		}

		existing, err := h.blogRepo.FindBySlug(req.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewValidationError("slug", "slug already in use"))
			return
		}

		if req.CategoryID != nil {
			if err := h.validateCategory(*req.CategoryID); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		blog := models.Blog{
			Title:      req.Title,
			Slug:       req.Slug,
			Content:    req.Content,
			ImageURL:   req.ImageURL,
			Status:     req.Status,
			AuthorID:   actor.ID,
			CategoryID: req.CategoryID,
		}
		if err := h.blogRepo.Add(&blog, req.TagIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog", "blog", err))
			return
		}

		created, err := h.blogRepo.FindByID(blog.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created blog", "blog", err))
			return
		}

		h.responder.WriteCreated(w, created)
	}
}

// readBlogs is the public feed: published blogs only, ascending id
// @Summary Public blog feed
// @Tags Blogs
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.Blog
// @Router /blogs [get]
func (h blogHandler) readBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		blogs, err := h.blogRepo.FindPublished(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blogs", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// myBlogs returns the caller's own blogs in any status, newest id first
// @Summary My blogs
// @Tags Blogs
// @Produce json
// @Success 200 {array} models.Blog
// @Router /blogs/my [get]
func (h blogHandler) myBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFromCtx(r.Context())

		blogs, err := h.blogRepo.FindByAuthor(actor.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blogs", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// dashboardBlogs returns every blog in every status to any authenticated
// user. Drafts from all authors are visible here.
// @Summary Dashboard blog listing
// @Tags Blogs
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.Blog
// @Router /blogs/dashboard [get]
func (h blogHandler) dashboardBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		blogs, err := h.blogRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blogs", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// readBlog fetches one blog. Published blogs are public; drafts are visible
// to their author and admins only.
// @Summary Get blog
// @Tags Blogs
// @Produce json
// @Param blogID path int true "Blog ID"
// @Success 200 {object} models.Blog
// @Failure 403 {object} ErrorResponse "Forbidden - Draft not visible to caller"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /blogs/{blogID} [get]
func (h blogHandler) readBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog"))
			return
		}

		actor := actorFromCtx(r.Context())
		published := blog.Status == models.BlogStatusPublished
		if err := policy.CanReadBlog(actor, blog.AuthorID, published); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// updateBlog partially updates a blog. Only the author or an admin may
// update; absent fields keep their prior value; a present tag_ids replaces
// the whole tag set.
// @Summary Update blog
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path int true "Blog ID"
// @Param blog body blogUpdateRequest true "Fields to update"
// @Success 200 {object} models.Blog
// @Failure 403 {object} ErrorResponse "Forbidden - Not the author or an admin"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /blogs/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog"))
			return
		}

		actor := actorFromCtx(r.Context())
		if err := policy.CanMutateBlog(actor, blog.AuthorID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req blogUpdateRequest
		if err := json.Unmarshal(bodyBytes, &req); err != nil {
			h.responder.WriteError(w, errs.Malformed("request body"))
			return
		}

		// Raw keys distinguish an absent category_id from an explicit null;
		// null clears the (nullable) category.
		var rawFields map[string]json.RawMessage
		if err := json.Unmarshal(bodyBytes, &rawFields); err != nil {
			h.responder.WriteError(w, errs.Malformed("request body"))
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
		if req.Content != nil {
			if *req.Content == "" {
				h.responder.WriteError(w, errs.NewValidationError("content", "content must not be empty"))
				return
			}
			fields["content"] = *req.Content
		}
		if req.ImageURL != nil {
			fields["image_url"] = *req.ImageURL
		}
		if req.Status != nil {
			if !models.ValidBlogStatus(*req.Status) {
				h.responder.WriteError(w, errs.NewValidationError("status", "status must be draft or published"))
				return
			}
			fields["status"] = *req.Status
		}
		if req.Slug != nil {
			if !slugPattern.MatchString(*req.Slug) {
				h.responder.WriteError(w, errs.NewValidationError("slug", "slug must be URL-safe"))
				return
			}
			other, err := h.blogRepo.FindBySlug(*req.Slug)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
				return
			}
			if other != nil && other.ID != blogID {
				h.responder.WriteError(w, errs.NewValidationError("slug", "slug already in use"))
				return
			}
			fields["slug"] = *req.Slug
		}
		if raw, present := rawFields["category_id"]; present {
			if string(raw) == "null" {
				fields["category_id"] = nil
			} else if req.CategoryID != nil {
				if err := h.validateCategory(*req.CategoryID); err != nil {
					h.responder.WriteError(w, err)
					return
				}
				fields["category_id"] = *req.CategoryID
			}
		}

		updated, err := h.blogRepo.Update(blogID, fields, req.TagIDs)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog", "blog", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog"))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlog removes a blog. Only the author or an admin may delete; the
// blog's tags survive, only the association rows go.
// @Summary Delete blog
// @Tags Blogs
// @Produce json
// @Param blogID path int true "Blog ID"
// @Success 200 {object} models.Blog "Deleted blog"
// @Failure 403 {object} ErrorResponse "Forbidden - Not the author or an admin"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /blogs/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog"))
			return
		}

		actor := actorFromCtx(r.Context())
		if err := policy.CanMutateBlog(actor, blog.AuthorID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}
