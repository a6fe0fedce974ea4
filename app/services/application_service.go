package services

import (
	"harborlight/app/models"
	"harborlight/app/repositories"
)

// ApplicationService handles business logic for job applications. An
// application references an existing job posting, starts in PENDING, and
// afterwards only its status changes; there is no delete operation.
type ApplicationService struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo, jobRepo: jobRepo}
}

// CreateApplication validates a submission, checks the referenced job
// posting exists, and persists the application.
func (s *ApplicationService) CreateApplication(app *models.JobApplication) error {
	if err := app.Validate(); err != nil {
		return err
	}

	if _, err := s.jobRepo.GetByID(app.JobID); err != nil {
		return err
	}

	app.BeforeCreate()
	return s.appRepo.Create(app)
}

// GetApplication retrieves a job application by ID
func (s *ApplicationService) GetApplication(id int) (*models.JobApplication, error) {
	return s.appRepo.GetByID(id)
}

// ListApplications retrieves all job applications
func (s *ApplicationService) ListApplications() ([]*models.JobApplication, error) {
	return s.appRepo.List()
}

// ListApplicationsByJob retrieves the applications for one job posting
func (s *ApplicationService) ListApplicationsByJob(jobID int) ([]*models.JobApplication, error) {
	return s.appRepo.ListByJob(jobID)
}

// UpdateStatus gates a status change: the requested value must be a member
// of the status enumeration, but any member may transition to any other.
func (s *ApplicationService) UpdateStatus(id int, status models.ApplicationStatus) (*models.JobApplication, error) {
	if err := models.ValidateStatus(status); err != nil {
		return nil, err
	}

	app, err := s.appRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	app.Status = status
	if err := s.appRepo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}
