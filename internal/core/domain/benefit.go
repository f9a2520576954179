package domain

// Benefit is a grant or scholarship that can be linked to applicants and to
// applications. Name and code are unique.
type Benefit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code int64  `json:"code"`
}
