package domain

// Career is reference data describing a degree program.
type Career struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faculty string `json:"faculty"`
	Code    int64  `json:"code"`
}
