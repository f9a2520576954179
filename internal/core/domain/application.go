package domain

import "time"

// Application records an applicant's submission to a career for a given entry
// year. The career is always taken from the applicant at creation time.
// Benefits keeps the requested benefit names as submitted; the authoritative
// application-benefit links live in their own join collection.
type Application struct {
	ID          string   `json:"id"`
	ApplicantID string   `json:"applicant_id"`
	CareerID    string   `json:"career_id"`
	EntryYear   string   `json:"entry_year"`
	Benefits    []string `json:"benefits,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
