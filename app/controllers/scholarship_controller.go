package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"harborlight/app/models"
	"harborlight/app/repositories"
	"harborlight/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// ScholarshipController handles HTTP requests for scholarship applications
type ScholarshipController struct {
	service *services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController backed by the
// given service
func NewScholarshipController(service *services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{service: service}
}

// NewScholarshipControllerWithDB creates a new ScholarshipController with a
// DB instance
func NewScholarshipControllerWithDB(db *badger.DB) *ScholarshipController {
	repo := repositories.NewBadgerScholarshipRepository(db)
	return &ScholarshipController{service: services.NewScholarshipService(repo)}
}

// Index handles listing all scholarship applications
func (sc *ScholarshipController) Index(w http.ResponseWriter, r *http.Request) {
	apps, err := sc.service.ListApplications()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
}

// Show handles displaying a single scholarship application
func (sc *ScholarshipController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "invalid application ID", http.StatusBadRequest)
		return
	}

	app, err := sc.service.GetApplication(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, app)
}

// Create handles a new scholarship application submission
func (sc *ScholarshipController) Create(w http.ResponseWriter, r *http.Request) {
	var app models.ScholarshipApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := sc.service.CreateApplication(&app); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, app)
}

// UpdateStatus handles a gated status change
func (sc *ScholarshipController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "invalid application ID", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	app, err := sc.service.UpdateStatus(id, req.Status)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, app)
}
