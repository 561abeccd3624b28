package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pulse-social/pulse-api/internal/api"
	apiMiddleware "github.com/pulse-social/pulse-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.passwordVerifier,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	postHandler := api.NewPostHandler(app.postService, app.config.API, app.logger)
	commentHandler := api.NewCommentHandler(app.commentService, app.logger)
	groupHandler := api.NewGroupHandler(app.groupService, app.logger)
	followHandler := api.NewFollowHandler(app.followService, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/users/", authHandler.Register)
		r.Post("/jwt/create/", authHandler.CreateToken)
		r.Post("/jwt/refresh/", authHandler.RefreshToken)
		r.Post("/jwt/verify/", authHandler.VerifyToken)

		// Everything else requires a valid access token, reads included.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/posts/", postHandler.List)
			r.Post("/posts/", postHandler.Create)
			r.Get("/posts/{id}/", postHandler.Retrieve)
			r.Put("/posts/{id}/", postHandler.Update)
			r.Patch("/posts/{id}/", postHandler.PartialUpdate)
			r.Delete("/posts/{id}/", postHandler.Destroy)

			r.Get("/posts/{post_id}/comments/", commentHandler.List)
			r.Post("/posts/{post_id}/comments/", commentHandler.Create)
			r.Get("/posts/{post_id}/comments/{id}/", commentHandler.Retrieve)
			r.Put("/posts/{post_id}/comments/{id}/", commentHandler.Update)
			r.Patch("/posts/{post_id}/comments/{id}/", commentHandler.PartialUpdate)
			r.Delete("/posts/{post_id}/comments/{id}/", commentHandler.Destroy)

			r.Get("/groups/", groupHandler.List)
			r.Post("/groups/", groupHandler.CreateNotAllowed)
			r.Get("/groups/{id}/", groupHandler.Retrieve)

			r.Get("/follow/", followHandler.List)
			r.Post("/follow/", followHandler.Create)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
