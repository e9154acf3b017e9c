package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxUploadSize bounds a single image upload. There is no chunking or
// resumability; one request carries the whole object.
const maxUploadSize = 10 * 1024 * 1024

var allowedUploadExtensions = map[string]bool{
	".webp": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

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

// upload stores one image under a random key in the requested bucket
// @Summary Upload image
// @Description Uploads an image into the "projects" or "banners" bucket under a freshly generated key and returns its public URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param bucket query string true "Target bucket" Enums(projects, banners)
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]string "Public URL of the stored object"
// @Failure 400 {object} ErrorResponse "Bad Request - Unknown bucket or disallowed file type"
// @Router /admin/upload [post]
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := r.URL.Query().Get("bucket")
		if !storage.ValidBucket(bucket) {
			h.responder.WriteError(w, errs.NewValidationError("bucket", "bucket must be \"projects\" or \"banners\""))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("file exceeds the 10MB upload limit or form is malformed"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("file", "file field is required"))
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedUploadExtensions[ext] {
			h.responder.WriteError(w, errs.NewValidationError("file", "only webp, jpg, jpeg, png and gif files are allowed"))
			return
		}

		url, err := h.store.Upload(r.Context(), bucket, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.logger.Error().Err(err).Str("bucket", bucket).Msg("upload failed")
			h.responder.WriteError(w, errs.NewInternalError("failed to store file"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}

// listUploads returns stored objects newest first
func (h uploadHandler) listUploads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := r.URL.Query().Get("bucket")
		if !storage.ValidBucket(bucket) {
			h.responder.WriteError(w, errs.NewValidationError("bucket", "bucket must be \"projects\" or \"banners\""))
			return
		}

		page, limit := pageParams(r)
		objects, err := h.store.List(r.Context(), bucket, page, limit)
		if err != nil {
			h.logger.Error().Err(err).Str("bucket", bucket).Msg("list uploads failed")
			h.responder.WriteError(w, errs.NewInternalError("failed to list files"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"objects": objects})
	}
}

// deleteUploads removes the named keys from a bucket
func (h uploadHandler) deleteUploads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Bucket string   `json:"bucket"`
			Keys   []string `json:"keys"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if !storage.ValidBucket(body.Bucket) {
			h.responder.WriteError(w, errs.NewValidationError("bucket", "bucket must be \"projects\" or \"banners\""))
			return
		}
		if len(body.Keys) == 0 {
			h.responder.WriteError(w, errs.NewValidationError("keys", "at least one key is required"))
			return
		}

		if err := h.store.Delete(r.Context(), body.Bucket, body.Keys...); err != nil {
			h.logger.Error().Err(err).Str("bucket", body.Bucket).Msg("delete uploads failed")
			h.responder.WriteError(w, errs.NewInternalError("failed to delete files"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "files deleted successfully",
		})
	}
}
