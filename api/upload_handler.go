package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
	"github.com/dreamcraft-eng/dreamcraft-backend/policy"
	"github.com/dreamcraft-eng/dreamcraft-backend/storage"
)

// uploads are capped at 10MB
const maxUploadBytes = 10 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
}

func newUploadHandler(store storage.Store) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadImage stores an uploaded image under a collision-free random name
// and returns its public URL (admin only).
// @Summary Upload image
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string "file_url of the stored image"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing file"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Failed to save file"
// @Router /upload/image [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.Malformed("multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		ext := strings.TrimPrefix(filepath.Ext(header.Filename), ".")

		_, url, err := h.store.Save(r.Context(), file, ext)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to store upload")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"file_url": url})
	}
}
