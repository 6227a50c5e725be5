package routes

import (
	"log/slog"
	"net/http"

	"postcard/app/controllers"
	"postcard/app/middleware"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the web and API routes for the post cards.
func SetupRoutes(cards *controllers.Cards, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	postController := controllers.NewPostController(cards)
	commentController := controllers.NewCommentController(cards)

	// Web routes
	router.HandleFunc("/", postController.Index).Methods("GET")

	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}/comments", commentController.Create).Methods("POST")
	posts.HandleFunc("/{id}/draft", commentController.Draft).Methods("POST")
	posts.HandleFunc("/{id}/comments/{commentId}/delete", commentController.Delete).Methods("POST")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	apiPosts := api.PathPrefix("/posts").Subrouter()
	apiPosts.HandleFunc("", postController.Index).Methods("GET")
	apiPosts.HandleFunc("", postController.Create).Methods("POST")
	apiPosts.HandleFunc("/{id}", postController.Show).Methods("GET")
	apiPosts.HandleFunc("/{id}/comments", commentController.Index).Methods("GET")
	apiPosts.HandleFunc("/{id}/comments", commentController.Create).Methods("POST")
	apiPosts.HandleFunc("/{id}/comments", commentController.DeleteByContent).Methods("DELETE")
	apiPosts.HandleFunc("/{id}/comments/{commentId}", commentController.Delete).Methods("DELETE")
	api.HandleFunc("/comments/{commentId}", commentController.DeleteByID).Methods("DELETE")

	return router
}

// NewServer returns an http.Server serving router on addr.
func NewServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: router,
	}
}
