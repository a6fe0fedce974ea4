package services

import (
	"harborlight/app/content"
	"harborlight/app/models"
	"harborlight/app/repositories"
)

// JobService handles business logic for job postings.
type JobService struct {
	jobRepo repositories.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// CreateJob validates a new job posting, derives its slug, and persists it.
func (s *JobService) CreateJob(job *models.JobPosting) error {
	if err := job.Validate(); err != nil {
		return err
	}

	job.Slug = content.Slugify(job.Title)
	job.BeforeCreate()

	return s.jobRepo.Create(job)
}

// GetJob retrieves a job posting by ID
func (s *JobService) GetJob(id int) (*models.JobPosting, error) {
	return s.jobRepo.GetByID(id)
}

// ListJobs retrieves all job postings
func (s *JobService) ListJobs() ([]*models.JobPosting, error) {
	return s.jobRepo.List()
}

// UpdateJob validates and updates an existing job posting. Only schema shape
// is enforced on update; the creation time and slug are preserved.
func (s *JobService) UpdateJob(job *models.JobPosting) error {
	if err := job.Validate(); err != nil {
		return err
	}

	existing, err := s.jobRepo.GetByID(job.ID)
	if err != nil {
		return err
	}
	job.Slug = existing.Slug
	job.CreatedAt = existing.CreatedAt

	return s.jobRepo.Update(job)
}

// DeleteJob deletes a job posting by ID
func (s *JobService) DeleteJob(id int) error {
	return s.jobRepo.Delete(id)
}
