package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/database"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// BlogPostListResponse carries one page of posts plus the matching total
type BlogPostListResponse struct {
	Posts []*models.BlogPost `json:"posts"`
	Total int64              `json:"total"`
}

// listBlogPosts returns posts newest first. The public route passes
// publishedOnly=true; the admin route sees drafts as well.
func (h blogPostHandler) listBlogPosts(publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageParams(r)
		search := r.URL.Query().Get("search")

		total, err := h.blogPostRepo.Count(search, publishedOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "blog posts", err))
			return
		}

		posts, err := h.blogPostRepo.List(page, limit, search, publishedOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostListResponse{Posts: posts, Total: total})
	}
}

// getBlogPost retrieves a post by slug. On the public route an unpublished
// post is indistinguishable from a missing one.
func (h blogPostHandler) getBlogPost(publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		if publishedOnly && !post.Published {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if post.Slug == "" {
			h.responder.WriteError(w, errs.NewValidationError("slug", "slug is required"))
			return
		}
		if post.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if post.Published && post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		existing, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		var fields map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// First publish stamps publishedAt unless the caller set one
		if raw, ok := fields["published"]; ok && existing.PublishedAt == nil {
			var published bool
			if err := json.Unmarshal(raw, &published); err == nil && published {
				if _, ok := fields["publishedAt"]; !ok {
					stamp, _ := json.Marshal(time.Now().UTC())
					fields["publishedAt"] = stamp
				}
			}
		}

		if err := h.blogPostRepo.Update(slug, fields); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		if _, err := h.blogPostRepo.FindBySlug(slug); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		if err := h.blogPostRepo.Delete(slug); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
