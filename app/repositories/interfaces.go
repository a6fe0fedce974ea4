package repositories

import "harborlight/app/models"

// PostRepository defines the interface for blog post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	SlugExists(slug string) (bool, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// JobRepository defines the interface for job posting data access
type JobRepository interface {
	Create(job *models.JobPosting) error
	GetByID(id int) (*models.JobPosting, error)
	List() ([]*models.JobPosting, error)
	Update(job *models.JobPosting) error
	Delete(id int) error
}

// ApplicationRepository defines the interface for job application data
// access. Applications are never deleted, so no Delete is exposed.
type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	GetByID(id int) (*models.JobApplication, error)
	List() ([]*models.JobApplication, error)
	ListByJob(jobID int) ([]*models.JobApplication, error)
	Update(app *models.JobApplication) error
}

// ScholarshipRepository defines the interface for scholarship application
// data access.
type ScholarshipRepository interface {
	Create(app *models.ScholarshipApplication) error
	GetByID(id int) (*models.ScholarshipApplication, error)
	List() ([]*models.ScholarshipApplication, error)
	Update(app *models.ScholarshipApplication) error
}
