package models

import "time"

// Deadline dates are exchanged in this format.
const DeadlineLayout = "2006-01-02"

// Validate checks the job posting against its schema constraints. The
// deadline must parse as a real date; a malformed string fails validation
// instead of silently producing an invalid date.
func (j *JobPosting) Validate() error {
	if err := translate(validate.Struct(j)); err != nil {
		return err
	}
	if j.Deadline != "" {
		if _, err := j.DeadlineTime(); err != nil {
			return NewValidationError("Deadline", "must be a valid date (YYYY-MM-DD)")
		}
	}
	return nil
}

// DeadlineTime parses the posting's deadline into a time value.
func (j *JobPosting) DeadlineTime() (time.Time, error) {
	return time.Parse(DeadlineLayout, j.Deadline)
}

// BeforeCreate sets up any necessary fields before creation.
func (j *JobPosting) BeforeCreate() {
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now()
	}
}
