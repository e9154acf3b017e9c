package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes wires the catalog reads and the lead-capture form.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers, leadLimiter func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())

		r.Get("/amenities", handlers.amenityHandler.listAmenities())

		r.Get("/banners", handlers.bannerHandler.listBanners())

		r.Get("/blog-posts", handlers.blogPostHandler.listBlogPosts(true))
		r.Get("/blog-post/{slug}", handlers.blogPostHandler.getBlogPost(true))

		r.With(leadLimiter).Post("/lead", handlers.leadHandler.createLead())

		r.Post("/auth/login", handlers.authHandler.login())
	})
}

// setupAdminRoutes wires the session-gated content management surface.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/auth/session", handlers.authHandler.session())
		r.Post("/auth/logout", handlers.authHandler.logout())

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/amenity", handlers.amenityHandler.createAmenity())
		r.Put("/amenity/{amenityID}", handlers.amenityHandler.updateAmenity())
		r.Delete("/amenity/{amenityID}", handlers.amenityHandler.deleteAmenity())

		r.Post("/banner", handlers.bannerHandler.createBanner())
		r.Put("/banner/{bannerID}", handlers.bannerHandler.updateBanner())
		r.Delete("/banner/{bannerID}", handlers.bannerHandler.deleteBanner())

		r.Get("/admin/blog-posts", handlers.blogPostHandler.listBlogPosts(false))
		r.Get("/admin/blog-post/{slug}", handlers.blogPostHandler.getBlogPost(false))
		r.Post("/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/blog-post/{slug}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/blog-post/{slug}", handlers.blogPostHandler.deleteBlogPost())

		r.Get("/admin/leads", handlers.leadHandler.listLeads())
		r.Patch("/admin/lead/{leadID}/status", handlers.leadHandler.updateLeadStatus())
		r.Delete("/admin/lead/{leadID}", handlers.leadHandler.deleteLead())

		r.Post("/admin/upload", handlers.uploadHandler.upload())
		r.Get("/admin/uploads", handlers.uploadHandler.listUploads())
		r.Delete("/admin/upload", handlers.uploadHandler.deleteUploads())
	})
}
