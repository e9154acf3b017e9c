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

type bannerHandler struct {
	responder  Responder
	logger     zerolog.Logger
	bannerRepo *database.BannerRepo
}

func newBannerHandler(bannerRepo *database.BannerRepo) bannerHandler {
	logger := log.With().Str("handlerName", "bannerHandler").Logger()

	return bannerHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		bannerRepo: bannerRepo,
	}
}

// BannerListResponse carries the hero slides. Fallback is true when the
// hardcoded defaults were served because the table is empty.
type BannerListResponse struct {
	Banners  []models.Banner `json:"banners"`
	Fallback bool            `json:"fallback,omitempty"`
}

// listBanners returns the hero carousel slides. An empty table yields the
// hardcoded default slides so the homepage never renders an empty carousel.
func (h bannerHandler) listBanners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := h.bannerRepo.List(0, 0, "")
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "banners", err))
			return
		}

		if len(banners) == 0 {
			h.responder.WriteJSON(w, BannerListResponse{
				Banners:  models.DefaultBanners(),
				Fallback: true,
			})
			return
		}

		slides := make([]models.Banner, 0, len(banners))
		for _, banner := range banners {
			slides = append(slides, *banner)
		}
		h.responder.WriteJSON(w, BannerListResponse{Banners: slides})
	}
}

func (h bannerHandler) createBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var banner models.Banner
		if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode banner request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if banner.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if banner.Image == "" {
			h.responder.WriteError(w, errs.NewValidationError("image", "image is required"))
			return
		}

		if err := h.bannerRepo.Add(&banner); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "banner", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, banner)
	}
}

func (h bannerHandler) updateBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bannerID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.bannerRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "banner", err))
			return
		}

		var fields map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode banner request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.bannerRepo.Update(id, fields); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.bannerRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "banner", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h bannerHandler) deleteBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bannerID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.bannerRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "banner", err))
			return
		}

		if err := h.bannerRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "banner", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "banner deleted successfully",
		})
	}
}

func bannerID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "bannerID")
	if raw == "" {
		return 0, errs.NewBadRequestError("missing bannerID")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid bannerID")
	}
	return uint(id), nil
}
