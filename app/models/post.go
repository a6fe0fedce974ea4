package models

import "time"

// Validate checks the post against its schema constraints, returning a
// ValidationError that lists every violation.
func (p *Post) Validate() error {
	return translate(validate.Struct(p))
}

// BeforeCreate sets up any necessary fields before creation.
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.Status == "" {
		p.Status = PostStatusDraft
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = now
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
