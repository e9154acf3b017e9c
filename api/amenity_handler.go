package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/database"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type amenityHandler struct {
	responder   Responder
	logger      zerolog.Logger
	amenityRepo *database.AmenityRepo
}

func newAmenityHandler(amenityRepo *database.AmenityRepo) amenityHandler {
	logger := log.With().Str("handlerName", "amenityHandler").Logger()

	return amenityHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		amenityRepo: amenityRepo,
	}
}

// AmenityListResponse carries one page of amenities plus the matching total
type AmenityListResponse struct {
	Amenities []*models.Amenity `json:"amenities"`
	Total     int64             `json:"total"`
}

// listAmenities returns amenities in display order
func (h amenityHandler) listAmenities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageParams(r)
		search := r.URL.Query().Get("search")

		total, err := h.amenityRepo.Count(search)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "amenities", err))
			return
		}

		amenities, err := h.amenityRepo.List(page, limit, search)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "amenities", err))
			return
		}

		h.responder.WriteJSON(w, AmenityListResponse{Amenities: amenities, Total: total})
	}
}

func (h amenityHandler) createAmenity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var amenity models.Amenity
		if err := json.NewDecoder(r.Body).Decode(&amenity); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode amenity request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if amenity.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if !models.ValidAmenityIcon(amenity.Icon) {
			h.responder.WriteError(w, errs.NewValidationError("icon", "unknown icon key"))
			return
		}

		if err := h.amenityRepo.Add(&amenity); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "amenity", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, amenity)
	}
}

// updateAmenity applies a partial update. Renaming does not cascade into
// projects that reference the old title; that gap is documented, not fixed.
func (h amenityHandler) updateAmenity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := amenityID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.amenityRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "amenity", err))
			return
		}

		var fields map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode amenity request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.amenityRepo.Update(id, fields); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.amenityRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "amenity", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h amenityHandler) deleteAmenity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := amenityID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.amenityRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "amenity", err))
			return
		}

		if err := h.amenityRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "amenity", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "amenity deleted successfully",
		})
	}
}

func amenityID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "amenityID")
	if raw == "" {
		return 0, errs.NewBadRequestError("missing amenityID")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid amenityID")
	}
	return uint(id), nil
}
