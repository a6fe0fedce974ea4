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

// ApplicationController handles HTTP requests for job applications. There is
// deliberately no delete route: applications are kept for the record.
type ApplicationController struct {
	appService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController backed by the
// given service
func NewApplicationController(appService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{appService: appService}
}

// NewApplicationControllerWithDB creates a new ApplicationController with a
// DB instance
func NewApplicationControllerWithDB(db *badger.DB) *ApplicationController {
	appRepo := repositories.NewBadgerApplicationRepository(db)
	jobRepo := repositories.NewBadgerJobRepository(db)
	return &ApplicationController{appService: services.NewApplicationService(appRepo, jobRepo)}
}

// Index handles listing job applications, optionally scoped to one posting
// via the job_id query parameter
func (ac *ApplicationController) Index(w http.ResponseWriter, r *http.Request) {
	if jobIDStr := r.URL.Query().Get("job_id"); jobIDStr != "" {
		jobID, err := strconv.Atoi(jobIDStr)
		if err != nil {
			sendError(w, "invalid job_id", http.StatusBadRequest)
			return
		}
		apps, err := ac.appService.ListApplicationsByJob(jobID)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		sendJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
		return
	}

	apps, err := ac.appService.ListApplications()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
}

// Show handles displaying a single job application
func (ac *ApplicationController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "invalid application ID", http.StatusBadRequest)
		return
	}

	app, err := ac.appService.GetApplication(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, app)
}

// Create handles a new application submission
func (ac *ApplicationController) Create(w http.ResponseWriter, r *http.Request) {
	var app models.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := ac.appService.CreateApplication(&app); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, app)
}

// statusRequest is the body of a status change request.
type statusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

// UpdateStatus handles a gated status change
func (ac *ApplicationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	app, err := ac.appService.UpdateStatus(id, req.Status)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, app)
}
