package models

import "time"

// Validate checks the scholarship application against its schema constraints.
func (s *ScholarshipApplication) Validate() error {
	if err := translate(validate.Struct(s)); err != nil {
		return err
	}
	if s.Status != "" {
		return ValidateStatus(s.Status)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation.
func (s *ScholarshipApplication) BeforeCreate() {
	if s.Status == "" {
		s.Status = ApplicationStatusPending
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
}
