package routes

import (
	"net/http"

	"harborlight/app/config"
	"harborlight/app/controllers"
	"harborlight/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router, using
// the provided Badger DB and site configuration.
func SetupRoutes(db *badger.DB, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostControllerWithDB(db)
	jobController := controllers.NewJobControllerWithDB(db)
	applicationController := controllers.NewApplicationControllerWithDB(db)
	scholarshipController := controllers.NewScholarshipControllerWithDB(db)
	seoController := controllers.NewSEOController(cfg)

	api := router.PathPrefix("/api").Subrouter()

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/categories", postController.Categories).Methods("GET")
	posts.HandleFunc("/slug/{slug}", postController.ShowBySlug).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Jobs API endpoints
	jobs := api.PathPrefix("/jobs").Subrouter()
	jobs.HandleFunc("", jobController.Index).Methods("GET")
	jobs.HandleFunc("/{id:[0-9]+}", jobController.Show).Methods("GET")
	jobs.HandleFunc("", jobController.Create).Methods("POST")
	jobs.HandleFunc("/{id:[0-9]+}", jobController.Edit).Methods("PUT")
	jobs.HandleFunc("/{id:[0-9]+}", jobController.Delete).Methods("DELETE")

	// Applications API endpoints. No delete route: applications are kept.
	applications := api.PathPrefix("/applications").Subrouter()
	applications.HandleFunc("", applicationController.Index).Methods("GET")
	applications.HandleFunc("/{id:[0-9]+}", applicationController.Show).Methods("GET")
	applications.HandleFunc("", applicationController.Create).Methods("POST")
	applications.HandleFunc("/{id:[0-9]+}/status", applicationController.UpdateStatus).Methods("PUT")

	// Scholarship API endpoints
	scholarships := api.PathPrefix("/scholarships").Subrouter()
	scholarships.HandleFunc("", scholarshipController.Index).Methods("GET")
	scholarships.HandleFunc("/{id:[0-9]+}", scholarshipController.Show).Methods("GET")
	scholarships.HandleFunc("", scholarshipController.Create).Methods("POST")
	scholarships.HandleFunc("/{id:[0-9]+}/status", scholarshipController.UpdateStatus).Methods("PUT")

	// Structured data for page embedding
	seo := api.PathPrefix("/seo").Subrouter()
	seo.HandleFunc("/organization", seoController.Organization).Methods("GET")
	seo.HandleFunc("/events", seoController.Events).Methods("GET")
	seo.HandleFunc("/projects", seoController.Projects).Methods("GET")

	// Serve the public site's static assets
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return router
}
