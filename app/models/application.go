package models

import "time"

// applicationStatuses is the closed set of permitted review states.
var applicationStatuses = map[ApplicationStatus]bool{
	ApplicationStatusPending:     true,
	ApplicationStatusUnderReview: true,
	ApplicationStatusShortlisted: true,
	ApplicationStatusInterviewed: true,
	ApplicationStatusAccepted:    true,
	ApplicationStatusRejected:    true,
}

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s ApplicationStatus) bool {
	return applicationStatuses[s]
}

// ValidateStatus gates a requested status change. Any member of the
// enumeration may transition to any other member; values outside the set are
// rejected with a ValidationError.
func ValidateStatus(s ApplicationStatus) error {
	if !ValidStatus(s) {
		return NewValidationError("Status", "must be one of [PENDING UNDER_REVIEW SHORTLISTED INTERVIEWED ACCEPTED REJECTED]")
	}
	return nil
}

// Validate checks the job application against its schema constraints.
func (a *JobApplication) Validate() error {
	if err := translate(validate.Struct(a)); err != nil {
		return err
	}
	if a.Status != "" {
		return ValidateStatus(a.Status)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation.
func (a *JobApplication) BeforeCreate() {
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
}
