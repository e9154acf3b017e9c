package api

import (
	"net/http"
	"strconv"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/database"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/services"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store storage.Store, notifier *services.LeadNotifier, c map[string]string) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(database.ProjectRepo()),
		amenityHandler:  newAmenityHandler(database.AmenityRepo()),
		bannerHandler:   newBannerHandler(database.BannerRepo()),
		leadHandler:     newLeadHandler(database.LeadRepo(), notifier),
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo()),
		uploadHandler:   newUploadHandler(store),
		authHandler:     newAuthHandler(database.AdminUserRepo(), c),
	}
}

// defaultPageSize matches the 3x3 card grid the frontend renders.
const defaultPageSize = 9

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or unparseable.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// pageParams reads the shared pagination query parameters. page == 0 means
// "return everything", preserving the unpaginated reads the public pages do.
func pageParams(r *http.Request) (page, limit int) {
	page = queryInt(r, "page", 0)
	limit = queryInt(r, "limit", 0)
	if page > 0 && limit <= 0 {
		limit = defaultPageSize
	}
	return page, limit
}
