package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every resource endpoint. Public reads go through
// maybeAuthenticate so a present-but-bad credential still fails with 401;
// everything else requires a valid bearer token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes, anonymous actors allowed
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.maybeAuthenticate)

		r.Post("/auth/register", handlers.authHandler.register())
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/blogs", handlers.blogHandler.readBlogs())
		r.Get("/blogs/{blogID}", handlers.blogHandler.readBlog())

		r.Get("/categories", handlers.categoryHandler.readCategories())
		r.Get("/categories/{categoryID}", handlers.categoryHandler.readCategory())

		r.Get("/tags", handlers.tagHandler.readTags())
		r.Get("/tags/{tagID}", handlers.tagHandler.readTag())

		r.Get("/projects", handlers.projectHandler.readProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.readProject())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/auth/me", handlers.authHandler.me())
		r.Delete("/auth/me", handlers.authHandler.deleteOwnAccount())

		r.Get("/users", handlers.userHandler.readUsers())
		r.Get("/users/{userID}", handlers.userHandler.readUser())
		r.Put("/users/{userID}", handlers.userHandler.updateUser())
		r.Delete("/users/{userID}", handlers.userHandler.deleteUser())

		r.Post("/roles", handlers.roleHandler.createRole())
		r.Get("/roles", handlers.roleHandler.readRoles())
		r.Get("/roles/{roleID}", handlers.roleHandler.readRole())
		r.Put("/roles/{roleID}", handlers.roleHandler.updateRole())
		r.Delete("/roles/{roleID}", handlers.roleHandler.deleteRole())

		r.Post("/blogs", handlers.blogHandler.createBlog())
		r.Get("/blogs/my", handlers.blogHandler.myBlogs())
		r.Get("/blogs/dashboard", handlers.blogHandler.dashboardBlogs())
		r.Put("/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		r.Post("/categories", handlers.categoryHandler.createCategory())
		r.Put("/categories/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/categories/{categoryID}", handlers.categoryHandler.deleteCategory())

		r.Post("/tags", handlers.tagHandler.createTag())
		r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/upload/image", handlers.uploadHandler.uploadImage())

		r.Get("/dashboard/stats", handlers.dashboardHandler.stats())
	})
}
