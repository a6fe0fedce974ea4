package models

import "time"

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// JobType is the employment type of a job posting.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeVolunteer  JobType = "VOLUNTEER"
	JobTypeInternship JobType = "INTERNSHIP"
)

// ApplicationStatus is the review state of a job or scholarship application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "PENDING"
	ApplicationStatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewed ApplicationStatus = "INTERVIEWED"
	ApplicationStatusAccepted    ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)

// Post represents a blog post. Slug, excerpt and read time are derived from
// the title and content at creation; the slug is unique within the store.
type Post struct {
	ID          int        `json:"id" validate:"gte=0"`
	Title       string     `json:"title" validate:"required,max=200"`
	Slug        string     `json:"slug" validate:"-"`
	Content     string     `json:"content" validate:"required"`
	Excerpt     string     `json:"excerpt" validate:"max=500"`
	Category    string     `json:"category" validate:"required"`
	Image       string     `json:"image,omitempty" validate:"omitempty,url"`
	PublishedAt time.Time  `json:"published_at"`
	ReadTime    string     `json:"read_time" validate:"-"`
	Status      PostStatus `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// JobPosting represents an open position at the organization.
type JobPosting struct {
	ID           int       `json:"id" validate:"gte=0"`
	Title        string    `json:"title" validate:"required,max=200"`
	Slug         string    `json:"slug" validate:"-"`
	Department   string    `json:"department" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	Type         JobType   `json:"type" validate:"oneof=FULL_TIME PART_TIME VOLUNTEER INTERNSHIP"`
	Description  string    `json:"description" validate:"required"`
	Requirements string    `json:"requirements" validate:"required"`
	Salary       string    `json:"salary,omitempty" validate:"-"`
	Deadline     string    `json:"deadline" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}

// JobApplication represents a candidate's application to a job posting.
// Applications are created on submission and never deleted; only the status
// changes afterwards.
type JobApplication struct {
	ID          int               `json:"id" validate:"gte=0"`
	JobID       int               `json:"job_id" validate:"required,gt=0"`
	Name        string            `json:"name" validate:"required,max=100"`
	Email       string            `json:"email" validate:"required,email"`
	Phone       string            `json:"phone,omitempty" validate:"-"`
	CoverLetter string            `json:"cover_letter,omitempty" validate:"-"`
	ResumeURL   string            `json:"resume_url,omitempty" validate:"omitempty,url"`
	Status      ApplicationStatus `json:"status" validate:"-"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ScholarshipApplication represents a scholarship request submitted through
// the public site.
type ScholarshipApplication struct {
	ID        int               `json:"id" validate:"gte=0"`
	Name      string            `json:"name" validate:"required,max=100"`
	Email     string            `json:"email" validate:"required,email"`
	School    string            `json:"school" validate:"required"`
	Essay     string            `json:"essay" validate:"required"`
	Status    ApplicationStatus `json:"status" validate:"-"`
	CreatedAt time.Time         `json:"created_at"`
}
