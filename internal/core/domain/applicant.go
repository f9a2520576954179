package domain

import "time"

// Applicant is a person applying to a career. It references its owning User
// and the target Career by id; benefits are linked through join rows in a
// separate collection, never embedded here.
type Applicant struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	RUT      string  `json:"rut"` // national id, stored digits-only
	CareerID string  `json:"career_id"`
	Address  string  `json:"address,omitempty"`
	NEM      float64 `json:"nem"`
	Ranking  float64 `json:"ranking"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
