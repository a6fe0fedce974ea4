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

// JobController handles HTTP requests for job postings
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController backed by the given service
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// NewJobControllerWithDB creates a new JobController with a DB instance
func NewJobControllerWithDB(db *badger.DB) *JobController {
	jobRepo := repositories.NewBadgerJobRepository(db)
	return &JobController{jobService: services.NewJobService(jobRepo)}
}

// Index handles listing all job postings
func (jc *JobController) Index(w http.ResponseWriter, r *http.Request) {
	jobs, err := jc.jobService.ListJobs()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

// Show handles displaying a single job posting
func (jc *JobController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "invalid job ID", http.StatusBadRequest)
		return
	}

	job, err := jc.jobService.GetJob(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, job)
}

// Create handles creating a new job posting
func (jc *JobController) Create(w http.ResponseWriter, r *http.Request) {
	var job models.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := jc.jobService.CreateJob(&job); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, job)
}

// Edit handles updating an existing job posting
func (jc *JobController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "invalid job ID", http.StatusBadRequest)
		return
	}

	var job models.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	job.ID = id

	if err := jc.jobService.UpdateJob(&job); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, job)
}

// Delete handles deleting a job posting
func (jc *JobController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "invalid job ID", http.StatusBadRequest)
		return
	}

	if err := jc.jobService.DeleteJob(id); err != nil {
		sendServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
