package routes

import (
	"log"
	"net/http"

	"microblog/app/auth"
	"microblog/app/config"
	"microblog/app/controllers"
	"microblog/app/middleware"
	"microblog/app/repositories"
	"microblog/app/services"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
)

// SetupRoutes wires repositories, services and controllers over the
// given database handle and returns the application router.
func SetupRoutes(db *sqlx.DB, cfg *config.Config, logger *log.Logger) *mux.Router {
	userRepo := repositories.NewSQLUserRepository(db, cfg.DBDriver)
	postRepo := repositories.NewSQLPostRepository(db, cfg.DBDriver)
	commentRepo := repositories.NewSQLCommentRepository(db, cfg.DBDriver)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authController := controllers.NewAuthController(userService, tokens)
	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// CORS preflight for any path; the CORS middleware adds the headers.
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Registration and login
	router.HandleFunc("/register/", authController.Register).Methods("POST")
	router.HandleFunc("/token", authController.Login).Methods("POST")

	// Users
	router.HandleFunc("/users/", userController.Index).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", userController.Show).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", userController.Delete).Methods("DELETE")

	// Posts
	router.HandleFunc("/posts/", postController.Index).Methods("GET")
	router.Handle("/posts/", requireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Comments
	router.HandleFunc("/posts/{id:[0-9]+}/comments/", commentController.ListForPost).Methods("GET")
	router.Handle("/posts/{id:[0-9]+}/comments/", requireAuth(http.HandlerFunc(commentController.Create))).Methods("POST")
	router.HandleFunc("/comments/", commentController.Index).Methods("GET")
	router.HandleFunc("/comments/{id:[0-9]+}", commentController.Show).Methods("GET")
	router.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	return router
}
