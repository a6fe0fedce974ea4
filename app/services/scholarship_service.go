package services

import (
	"harborlight/app/models"
	"harborlight/app/repositories"
)

// ScholarshipService handles business logic for scholarship applications.
type ScholarshipService struct {
	repo repositories.ScholarshipRepository
}

// NewScholarshipService creates a new ScholarshipService
func NewScholarshipService(repo repositories.ScholarshipRepository) *ScholarshipService {
	return &ScholarshipService{repo: repo}
}

// CreateApplication validates and persists a scholarship application.
func (s *ScholarshipService) CreateApplication(app *models.ScholarshipApplication) error {
	if err := app.Validate(); err != nil {
		return err
	}

	app.BeforeCreate()
	return s.repo.Create(app)
}

// GetApplication retrieves a scholarship application by ID
func (s *ScholarshipService) GetApplication(id int) (*models.ScholarshipApplication, error) {
	return s.repo.GetByID(id)
}

// ListApplications retrieves all scholarship applications
func (s *ScholarshipService) ListApplications() ([]*models.ScholarshipApplication, error) {
	return s.repo.List()
}

// UpdateStatus gates a status change through the same enumeration check used
// for job applications.
func (s *ScholarshipService) UpdateStatus(id int, status models.ApplicationStatus) (*models.ScholarshipApplication, error) {
	if err := models.ValidateStatus(status); err != nil {
		return nil, err
	}

	app, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	app.Status = status
	if err := s.repo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}
